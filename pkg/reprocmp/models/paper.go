package models

import "time"

// PaperStatus is the moderation state of a paper.
type PaperStatus string

const (
	StatusPending   PaperStatus = "pending"
	StatusRejected  PaperStatus = "rejected"
	StatusPublished PaperStatus = "published"
)

// Paper is the original work being reproduced. It exclusively owns its
// comparison tables.
type Paper struct {
	// ID is the document id. It is also the paper's contributor id.
	ID string `json:"id"`
	// Title is the paper title.
	Title string `json:"title" validate:"required"`
	// Abstract is the paper abstract.
	Abstract string `json:"abstract,omitempty"`
	// Authors lists author names.
	Authors []string `json:"authors,omitempty" validate:"dive,required"`
	// URLAbstract links to the abstract page.
	URLAbstract string `json:"url_abstract,omitempty" validate:"omitempty,url"`
	// URLPDF links to the full text.
	URLPDF string `json:"url_pdf,omitempty" validate:"omitempty,url"`
	// Status is the moderation state.
	Status PaperStatus `json:"status" validate:"oneof=pending rejected published"`
	// Tables holds the comparison tables.
	Tables TableSet `json:"tables"`
	// CreatedBy is the submitting user id.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt is the submission time.
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a copy of p whose tables share no memory with p.
func (p Paper) Clone() (Paper, error) {
	out := p
	out.Authors = append([]string(nil), p.Authors...)
	tables, err := p.Tables.Clone()
	if err != nil {
		return Paper{}, err
	}
	out.Tables = tables
	return out, nil
}
