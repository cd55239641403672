package domain

// FormattedValue is one formatted input, as handed to output renderers.
type FormattedValue struct {
	// Input is the raw text the value was parsed from. Value is left out of
	// JSON since NaN and Inf cannot be encoded.
	Input     string  `json:"input"`
	Value     float64 `json:"-"`
	Band      string  `json:"band,omitempty"`
	Formatted string  `json:"formatted"`
	Error     string  `json:"error,omitempty"`
}

// Failed reports whether the value could not be formatted.
func (fv FormattedValue) Failed() bool { return fv.Error != "" }
