package validation

import "github.com/phrazzld/movie-api/internal/domain"

// Field names accepted on the wire.
const (
	FieldTitle   = "titulo"
	FieldYear    = "año"
	FieldReview  = "critica"
	FieldCover   = "caratula"
	FieldMovieID = "id_pelicula"
	ParamID      = "id"
)

// Messages reported for failing movie fields.
const (
	MsgTitleEmpty     = "El título no puede estar vacío"
	MsgYearInvalid    = "El año debe ser un número válido"
	MsgYearEdit       = "El año debe ser válido"
	MsgReviewEmpty    = "La crítica no puede estar vacía"
	MsgInvalidMovieID = "ID de película inválido"
)

// CreateRules validates POST /create.
var CreateRules = RuleSet{
	Body(FieldTitle, MsgTitleEmpty).Trim().NotEmpty().Escape(),
	Body(FieldYear, MsgYearInvalid).IntInRange(domain.MinYear, domain.MaxYear),
	Body(FieldReview, MsgReviewEmpty).Trim().NotEmpty().Escape(),
	Body(FieldCover, "").OptionalField().Trim().Escape(),
}

// GetRules validates GET /movie/{id}.
var GetRules = RuleSet{
	Param(ParamID, MsgInvalidMovieID).IsNumeric().ToInt(),
}

// UpdateRules validates PUT /edit. Every movie field is optional but must
// satisfy the create constraints when present.
var UpdateRules = RuleSet{
	Body(FieldMovieID, MsgInvalidMovieID).IsNumeric().ToInt(),
	Body(FieldTitle, MsgTitleEmpty).OptionalField().Trim().NotEmpty().Escape(),
	Body(FieldYear, MsgYearEdit).OptionalField().IntInRange(domain.MinYear, domain.MaxYear),
	Body(FieldReview, MsgReviewEmpty).OptionalField().Trim().NotEmpty().Escape(),
	Body(FieldCover, "").OptionalField().Trim().Escape(),
}

// DeleteRules validates DELETE /delete.
var DeleteRules = RuleSet{
	Body(FieldMovieID, MsgInvalidMovieID).IsNumeric().ToInt(),
}
