package htmldoc

import (
	"strconv"

	"fortio.org/safecast"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlockKind classifies a top-level element of a section.
type BlockKind uint8

const (
	BlockOther BlockKind = iota
	BlockHeading
	BlockParagraph
	BlockList
	BlockTable
	BlockPre
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockParagraph:
		return "paragraph"
	case BlockList:
		return "list"
	case BlockTable:
		return "table"
	case BlockPre:
		return "pre"
	}
	return "other"
}

// Block is one element of a flattened sibling sequence.
// Level is 1..6 for headings and 0 otherwise.
type Block struct {
	Kind  BlockKind
	Level uint8
	Node  *html.Node
}

// Tag returns the element name of the block.
func (b Block) Tag() string {
	if b.Node == nil {
		return ""
	}
	return b.Node.Data
}

// IsHeading reports whether b is a heading of exactly the given level.
func (b Block) IsHeading(level uint8) bool {
	return b.Kind == BlockHeading && b.Level == level
}

// Ends reports whether b closes a section opened by a heading of the given level.
func (b Block) Ends(level uint8) bool {
	return b.Kind == BlockHeading && b.Level <= level
}

// Classify turns an element into a Block.
func Classify(n *html.Node) Block {
	b := Block{Kind: BlockOther, Node: n}
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		b.Kind = BlockHeading
		b.Level = HeadingLevel(n)
	case atom.P:
		b.Kind = BlockParagraph
	case atom.Ul, atom.Ol, atom.Dl:
		b.Kind = BlockList
	case atom.Table:
		b.Kind = BlockTable
	case atom.Pre:
		b.Kind = BlockPre
	}
	return b
}

// HeadingLevel returns the level of an h1..h6 element, or 0.
func HeadingLevel(n *html.Node) uint8 {
	if n == nil || n.Type != html.ElementNode || len(n.Data) != 2 || n.Data[0] != 'h' {
		return 0
	}
	lvl, err := strconv.Atoi(n.Data[1:])
	if err != nil || lvl < 1 || lvl > 6 {
		return 0
	}
	level, err := safecast.Conv[uint8](lvl)
	if err != nil {
		return 0
	}
	return level
}

// Blocks flattens the element siblings that follow anchor. Text and comment
// nodes between elements are skipped.
func Blocks(anchor *html.Node) []Block {
	if anchor == nil {
		return nil
	}
	var out []Block
	for n := anchor.NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		out = append(out, Classify(n))
	}
	return out
}

// Section returns the prefix of blocks that precedes the first heading of
// level <= level.
func Section(blocks []Block, level uint8) []Block {
	for i, b := range blocks {
		if b.Ends(level) {
			return blocks[:i]
		}
	}
	return blocks
}

// NextOf returns the first block after anchor that satisfies keep, without a
// section boundary.
func NextOf(anchor *html.Node, keep func(Block) bool) (Block, bool) {
	if anchor == nil {
		return Block{}, false
	}
	for n := anchor.NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if b := Classify(n); keep(b) {
			return b, true
		}
	}
	return Block{}, false
}

// Cursor walks a block sequence front to back.
type Cursor struct {
	blocks []Block
	pos    int
}

// NewCursor returns a cursor positioned before the first block.
func NewCursor(blocks []Block) *Cursor {
	return &Cursor{blocks: blocks}
}

// Peek returns the next block without consuming it.
func (c *Cursor) Peek() (Block, bool) {
	if c.pos >= len(c.blocks) {
		return Block{}, false
	}
	return c.blocks[c.pos], true
}

// Next consumes and returns the next block.
func (c *Cursor) Next() (Block, bool) {
	b, ok := c.Peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// Rest consumes and returns every remaining block.
func (c *Cursor) Rest() []Block {
	rest := c.blocks[c.pos:]
	c.pos = len(c.blocks)
	return rest
}

// Done reports whether every block was consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.blocks)
}

// Subsections splits a section body into the runs opened by headings of the
// given level. Blocks before the first such heading are ignored.
func Subsections(section []Block, level uint8) []Subsection {
	var out []Subsection
	for i, b := range section {
		if !b.IsHeading(level) {
			continue
		}
		out = append(out, Subsection{
			Heading: b,
			Body:    Section(section[i+1:], level),
		})
	}
	return out
}

// Subsection is a heading together with the blocks it owns.
type Subsection struct {
	Heading Block
	Body    []Block
}
