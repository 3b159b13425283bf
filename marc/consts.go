package marc

const (
	LeaderLength         = 24
	DirectoryEntryLength = 12

	// RecordTerminator ends every record.
	RecordTerminator byte = 0x1d
	// FieldTerminator ends the directory and every variable field.
	FieldTerminator byte = 0x1e
	// SubfieldDelimiter introduces a subfield code inside a data field.
	SubfieldDelimiter byte = 0x1f
	Blank             byte = ' '

	ControlNumberTag = "001"

	maxFieldLength  = 9999
	maxFieldOffset  = 99999
	maxRecordLength = 99999
)
