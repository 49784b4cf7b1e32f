package fonts

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"

	"github.com/youruser/speakercard/pkg/errs"
)

// DefaultName is tried once after every candidate in a name list missed.
const DefaultName = "Arial"

// findFunc locates an installed font file by family name. Overridable in
// tests; defaults to findfont.Find against the system font directories.
type findFunc func(name string) (string, error)

// Resolver turns font selectors into usable families. Safe for
// concurrent use; the system catalog is only read.
type Resolver struct {
	logger *zap.Logger
	find   findFunc
}

func NewResolver(logger *zap.Logger) *Resolver {
	return &Resolver{logger: logger, find: findfont.Find}
}

// Resolve dispatches on the selector variant. Already-resolved families
// pass through without touching the catalog.
func (r *Resolver) Resolve(sel Selector, defaultName string) (*Family, error) {
	switch {
	case sel.Family != nil:
		return sel.Family, nil
	case sel.Path != "":
		return r.FromFile(sel.Path)
	case sel.Names != nil:
		return r.FromNames(sel.Names, defaultName)
	default:
		return nil, errs.Invalidf("font selector is required")
	}
}

// FromNames returns the first candidate present in the installed-font
// catalog, then tries defaultName once. Per-candidate misses are
// expected and skipped silently. Exhausting both is a soft failure:
// one error is logged and ErrNoFontAvailable returned.
func (r *Resolver) FromNames(names []string, defaultName string) (*Family, error) {
	if len(names) == 0 {
		return nil, errs.Invalidf("font name list is required")
	}
	if defaultName == "" {
		defaultName = DefaultName
	}

	for _, name := range names {
		if fam := r.lookup(name); fam != nil {
			return fam, nil
		}
	}
	if fam := r.lookup(defaultName); fam != nil {
		return fam, nil
	}

	r.logger.Error("no usable font found",
		zap.Strings("candidates", names),
		zap.String("default", defaultName))
	return nil, errs.ErrNoFontAvailable
}

// FromFile parses a single font file. A corrupt or unsupported file is a
// soft failure, not a crash: fonts on disk are environment, not code.
func (r *Resolver) FromFile(path string) (*Family, error) {
	if path == "" {
		return nil, errs.Invalidf("font file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Missingf("font file %s", path)
		}
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		r.logger.Error("failed to parse font file",
			zap.String("path", path),
			zap.Error(err))
		return nil, errs.ErrNoFontAvailable
	}
	return &Family{Name: path, regular: f}, nil
}

// FromBytes parses an in-memory font, e.g. an embedded TTF.
func FromBytes(name string, data []byte) (*Family, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Family{Name: name, regular: f}, nil
}

// lookup finds and parses one candidate, probing for a bold variant
// alongside it. Any miss or parse failure means "try the next name".
func (r *Resolver) lookup(name string) *Family {
	path, err := r.find(name)
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		r.logger.Debug("skipping unparseable font",
			zap.String("name", name),
			zap.String("path", path),
			zap.Error(err))
		return nil
	}

	fam := &Family{Name: name, regular: f}
	if boldPath, err := r.find(name + " Bold"); err == nil && boldPath != path {
		if boldData, err := os.ReadFile(boldPath); err == nil {
			if bold, err := truetype.Parse(boldData); err == nil {
				fam.bold = bold
			}
		}
	}
	return fam
}
