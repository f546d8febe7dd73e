package api

import (
	"github.com/mitchellh/mapstructure"
)

// Annotation is one annotated fragment of a medium. Fragment and Data are
// layer-defined structures the server does not interpret.
type Annotation struct {
	ID       string      `json:"_id"`
	IDLayer  string      `json:"id_layer,omitempty"`
	IDMedium string      `json:"id_medium,omitempty"`
	Fragment interface{} `json:"fragment,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

type AnnotationCreate struct {
	IDMedium string      `json:"id_medium,omitempty"`
	Fragment interface{} `json:"fragment,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

type AnnotationUpdate struct {
	Fragment interface{} `json:"fragment,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// DecodeFragment decodes the loosely-typed fragment into the caller's struct.
func (a *Annotation) DecodeFragment(v interface{}) error {
	return DecodeLoose(a.Fragment, v)
}

// DecodeData decodes the loosely-typed data payload into the caller's struct.
func (a *Annotation) DecodeData(v interface{}) error {
	return DecodeLoose(a.Data, v)
}

// DecodeLoose maps a loosely-typed JSON value onto dst, tolerating numeric
// and string type drift the way the server emits it.
func DecodeLoose(src, dst interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(src)
}
