package model

type RatioResponse struct {
	Note  string  `json:"note"`
	Ratio float64 `json:"ratio"`
}

type PressRequestBody struct {
	Note string `json:"note"`
}

type PressResponse struct {
	Id      string  `json:"id"`
	Note    string  `json:"note"`
	Ratio   float64 `json:"ratio"`
	Display string  `json:"display"`
}

// ActiveResponse is what the page shows (and copies) for the last press.
type ActiveResponse struct {
	Display string `json:"display"`
	Presses uint64 `json:"presses"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
