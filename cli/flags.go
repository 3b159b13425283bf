package cli

const (
	FlagHome     = "home"
	FlagFormat   = "format"
	FlagCharset  = "charset"
	FlagEncoding = "encoding"
)
