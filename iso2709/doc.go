/*
Package iso2709 decodes streams of ISO 2709 records into structural events.

A Decoder pulls bytes from an io.Reader and pushes events to a Handler:

	StartCollection
	  StartRecord(leader)
	    ControlField(tag, data)
	    StartDataField(tag, ind1, ind2)
	      Subfield(code, data)
	    EndDataField(tag)
	  EndRecord
	EndCollection

Problems found in the stream are graded and sent to an optional
ErrorHandler as Diagnostics carrying the absolute stream position and the
most recently seen control number:

	- Warning: the offending field is skipped, its siblings still decode.
	- Error: reported and decoding continues, except for an invalid
	  directory length, which stops the stream.
	- Fatal: the stream stops.

Without an ErrorHandler diagnostics are dropped and decoding follows the
same policy. Diagnostics that stop the stream are also returned from Parse.

Handlers shipped with the package:

	- RecordBuilder accumulates marc.Records in memory.
	- Writer re-encodes every record to an io.Writer.
	- TaggedWriter prints a plain-text listing.
	- MultiHandler fans events out to several handlers.
	- ConvertingHandler converts payload charsets before forwarding.

A Decoder is not safe for concurrent use. Use one Decoder per stream.
*/
package iso2709
