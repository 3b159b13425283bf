package iso2709

import (
	"gomarc/charconv"
)

// ConvertingHandler runs control field and subfield payloads through a
// charconv.Converter before forwarding them. A payload that fails to
// convert is returned as an error, so the Decoder skips that field.
type ConvertingHandler struct {
	Handler
	conv charconv.Converter
}

func NewConvertingHandler(h Handler, conv charconv.Converter) *ConvertingHandler {
	return &ConvertingHandler{
		Handler: h,
		conv:    conv,
	}
}

func (c *ConvertingHandler) ControlField(tag string, data []byte) error {
	out, err := c.conv.Convert(data)
	if err != nil {
		return err
	}
	return c.Handler.ControlField(tag, out)
}

func (c *ConvertingHandler) Subfield(code byte, data []byte) error {
	out, err := c.conv.Convert(data)
	if err != nil {
		return err
	}
	return c.Handler.Subfield(code, out)
}
