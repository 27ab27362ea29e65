package renderer

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrInvalidIndentStyle is raised by Builder.WithIndentStyle for values
	// other than IndentStyleTab and IndentStyleSpace.
	ErrInvalidIndentStyle = errors.New("renderer: indent style is required")

	// ErrUnknownDialect is raised by Builder.WithDialect for values that
	// name no dialect.
	ErrUnknownDialect = errors.New("renderer: unknown dialect")
)

var (
	defaultConfig  = NewConfig().Build()
	prettyPrinting = NewConfig().WithPrettyPrint(true).AlwaysEscapeNames(false).Build()
)

// IndentStyle selects the characters used for one level of indentation.
type IndentStyle int

const (
	// IndentStyleTab indents with one tab per level.
	IndentStyleTab IndentStyle = iota + 1
	// IndentStyleSpace indents with IndentSize spaces per level.
	IndentStyleSpace
)

func (s IndentStyle) valid() bool {
	return s == IndentStyleTab || s == IndentStyleSpace
}

func (s IndentStyle) String() string {
	switch s {
	case IndentStyleTab:
		return "TAB"
	case IndentStyleSpace:
		return "SPACE"
	default:
		return "UNKNOWN"
	}
}

// Configuration controls how a statement is rendered. Instances are
// immutable and safe to share between goroutines; use NewConfig to create
// variants.
type Configuration struct {
	prettyPrint       bool
	indentStyle       IndentStyle
	indentSize        int
	alwaysEscapeNames bool
	useGeneratedNames bool
	dialect           Dialect
}

// DefaultConfig renders on a single line with all labels and types escaped.
// It always returns the same instance.
func DefaultConfig() *Configuration {
	return defaultConfig
}

// PrettyPrinting renders one clause per line with default indentation and
// escapes names only where required. It always returns the same instance.
func PrettyPrinting() *Configuration {
	return prettyPrinting
}

// PrettyPrint reports whether clauses are put on separate lines.
func (c *Configuration) PrettyPrint() bool { return c.prettyPrint }

// IndentStyle returns whether tabs or spaces are used to indent.
func (c *Configuration) IndentStyle() IndentStyle { return c.indentStyle }

// IndentSize returns the width of one indentation level. Only applies to
// IndentStyleSpace.
func (c *Configuration) IndentSize() int { return c.indentSize }

// AlwaysEscapeNames reports whether labels and relationship types are
// escaped even when they are valid identifiers.
func (c *Configuration) AlwaysEscapeNames() bool { return c.alwaysEscapeNames }

// UseGeneratedNames reports whether symbolic and parameter names are
// replaced by generated ones. Two statements that differ only in the names
// the caller picked render identically with this turned on.
func (c *Configuration) UseGeneratedNames() bool { return c.useGeneratedNames }

// Dialect returns the target dialect.
func (c *Configuration) Dialect() Dialect { return c.dialect }

// Equal reports whether c and other have the same settings.
func (c *Configuration) Equal(other *Configuration) bool {
	if c == nil || other == nil {
		return c == other
	}
	return *c == *other
}

// Hash returns a hash of all settings, consistent with Equal.
func (c *Configuration) Hash() uint64 {
	var buf [13]byte
	buf[0] = boolByte(c.prettyPrint)
	buf[1] = byte(c.indentStyle)
	binary.LittleEndian.PutUint64(buf[2:10], uint64(c.indentSize))
	buf[10] = boolByte(c.alwaysEscapeNames)
	buf[11] = boolByte(c.useGeneratedNames)
	buf[12] = byte(c.dialect)
	return xxhash.Sum64(buf[:])
}

func (c *Configuration) String() string {
	return fmt.Sprintf("Configuration{prettyPrint=%t, indentStyle=%s, indentSize=%d}",
		c.prettyPrint, c.indentStyle, c.indentSize)
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Builder collects settings for a new Configuration. A Builder is not safe
// for concurrent use and can keep being used after Build.
type Builder struct {
	prettyPrint       bool
	indentStyle       IndentStyle
	indentSize        int
	alwaysEscapeNames bool
	useGeneratedNames bool
	dialect           Dialect
}

// NewConfig returns a builder holding the default settings.
func NewConfig() *Builder {
	return &Builder{
		indentStyle:       IndentStyleSpace,
		indentSize:        2,
		alwaysEscapeNames: true,
		dialect:           DialectDefault,
	}
}

// WithPrettyPrint enables or disables pretty printing. Enabling it also
// disables escaping of names that do not need it.
func (b *Builder) WithPrettyPrint(prettyPrint bool) *Builder {
	b.prettyPrint = prettyPrint
	if prettyPrint {
		return b.AlwaysEscapeNames(false)
	}
	return b
}

// WithIndentStyle sets the indentation style. It panics with
// ErrInvalidIndentStyle on an invalid style.
func (b *Builder) WithIndentStyle(style IndentStyle) *Builder {
	if !style.valid() {
		panic(fmt.Errorf("%w: got %d", ErrInvalidIndentStyle, int(style)))
	}
	b.indentStyle = style
	return b
}

// WithIndentSize sets the number of spaces per indentation level.
func (b *Builder) WithIndentSize(size int) *Builder {
	b.indentSize = size
	return b
}

// AlwaysEscapeNames configures whether labels and types are always escaped.
func (b *Builder) AlwaysEscapeNames(alwaysEscapeNames bool) *Builder {
	b.alwaysEscapeNames = alwaysEscapeNames
	return b
}

// UseGeneratedNames configures whether symbolic and parameter names are
// replaced with generated names.
func (b *Builder) UseGeneratedNames(useGeneratedNames bool) *Builder {
	b.useGeneratedNames = useGeneratedNames
	return b
}

// WithDialect selects the target dialect. The zero Dialect resets to the
// default on Build; any other unknown value panics with ErrUnknownDialect.
func (b *Builder) WithDialect(dialect Dialect) *Builder {
	if dialect != 0 && !dialect.valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownDialect, int(dialect)))
	}
	b.dialect = dialect
	return b
}

// Build returns a new immutable Configuration.
func (b *Builder) Build() *Configuration {
	dialect := b.dialect
	if dialect == 0 {
		dialect = DialectDefault
	}
	return &Configuration{
		prettyPrint:       b.prettyPrint,
		indentStyle:       b.indentStyle,
		indentSize:        b.indentSize,
		alwaysEscapeNames: b.alwaysEscapeNames,
		useGeneratedNames: b.useGeneratedNames,
		dialect:           dialect,
	}
}
