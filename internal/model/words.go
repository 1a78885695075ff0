package model

// WordConcatRequest is the body of POST /word/concat.
type WordConcatRequest struct {
	Words []string `json:"words" validate:"required,min=1"`
}

func (r *WordConcatRequest) Validate() error {
	return validate.Struct(r)
}

type WordConcatResponse struct {
	Result string   `json:"result"`
	Words  []string `json:"words"`
}
