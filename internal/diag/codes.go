package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Degradations: content skipped, extraction continues.
	ExtInfo             Code = 1000
	ExtMissingSection   Code = 1001
	ExtMalformedRow     Code = 1002
	ExtMalformedClause  Code = 1003
	ExtUnnamedSignature Code = 1004
	ExtUnknownDirection Code = 1005
	ExtMissingKeyword   Code = 1006
	ExtEmptySubsection  Code = 1007

	// Structural violations: extraction aborts.
	StructInfo              Code = 2000
	StructUnexpectedElement Code = 2001
	StructMissingName       Code = 2002
	StructUnnamedOverload   Code = 2003

	// Input/output around the engine.
	IOInfo      Code = 3000
	IOReadFail  Code = 3001
	IOWriteFail Code = 3002
	IOCacheFail Code = 3003
)

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown problem",
	ExtInfo:                 "Extraction information",
	ExtMissingSection:       "Optional section missing",
	ExtMalformedRow:         "Table row skipped",
	ExtMalformedClause:      "Parameterization clause skipped",
	ExtUnnamedSignature:     "Signature without function name skipped",
	ExtUnknownDirection:     "Unknown builtin value direction",
	ExtMissingKeyword:       "Keyword entry without text",
	ExtEmptySubsection:      "Function subsection without description",
	StructInfo:              "Document structure information",
	StructUnexpectedElement: "Anchor has unexpected element kind",
	StructMissingName:       "Function subsection without name",
	StructUnnamedOverload:   "Overload table signature has no function name",
	IOInfo:                  "Input/output information",
	IOReadFail:              "Failed to read input",
	IOWriteFail:             "Failed to write output",
	IOCacheFail:             "Catalog cache unavailable",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("EXT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
