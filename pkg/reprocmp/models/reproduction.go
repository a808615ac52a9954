package models

import "time"

// Badge labels the kind of reproduction work.
type Badge string

const (
	BadgeReproduced   Badge = "reproduced"
	BadgeReplicated   Badge = "replicated"
	BadgeHyperparam   Badge = "hyperparam"
	BadgeNewData      Badge = "newdata"
	BadgeNewAlgorithm Badge = "newalgorithm"
	BadgeNewCode      Badge = "newcode"
	BadgeAblation     Badge = "ablation"
)

// Reproduction is an independent attempt at reproducing a paper. It owns its
// value-fill and only reads the paper's table schema.
type Reproduction struct {
	// ID is the document id. It is also the reproduction's contributor id.
	ID string `json:"id"`
	// PaperID is the reproduced paper.
	PaperID string `json:"paper_id" validate:"required"`
	// Title is the reproduction title.
	Title string `json:"title" validate:"required"`
	// Description explains the reproduction procedure.
	Description string `json:"description" validate:"required"`
	// Authors lists author names.
	Authors []string `json:"authors" validate:"min=1,dive,required"`
	// URLBlog links to a write-up.
	URLBlog string `json:"url_blog,omitempty" validate:"omitempty,url"`
	// URLCode is the code repository as owner/repository.
	URLCode string `json:"url_code" validate:"required,repository"`
	// Badges classify the work.
	Badges []Badge `json:"badges,omitempty" validate:"dive,oneof=reproduced replicated hyperparam newdata newalgorithm newcode ablation"`
	// Tables is the value-fill keyed by the paper's table keys.
	Tables TableValues `json:"tables,omitempty"`
	// CreatedBy is the submitting user id.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt is the submission time. Reproductions are listed by it.
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a copy of r whose value-fill shares no memory with r.
func (r Reproduction) Clone() (Reproduction, error) {
	out := r
	out.Authors = append([]string(nil), r.Authors...)
	out.Badges = append([]Badge(nil), r.Badges...)
	tables, err := r.Tables.Clone()
	if err != nil {
		return Reproduction{}, err
	}
	out.Tables = tables
	return out, nil
}
