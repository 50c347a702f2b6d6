package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/chromix/internal/colorspace"
	"github.com/aalvaropc/chromix/internal/domain"
	"github.com/aalvaropc/chromix/internal/ports"
	"github.com/aalvaropc/chromix/internal/usecase/extract"
)

type ImportRequest struct {
	// Path to a JSON design-token document.
	Path string
	// JSONPath selecting the node to import; "$" (the whole document) when empty.
	Expr string
	Name string
	Save bool
}

// ImportIssue is a token that was found but could not become a swatch.
type ImportIssue struct {
	Token   string `json:"token"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

type ImportResult struct {
	Artifact domain.PaletteArtifact `json:"artifact"`
	ID       string                 `json:"id,omitempty"`
	Issues   []ImportIssue          `json:"issues"`
}

type ImportTokens struct {
	settings
	store ports.ExportStore
}

func NewImportTokens(store ports.ExportStore, opts ...Option) *ImportTokens {
	return &ImportTokens{settings: newSettings(opts), store: store}
}

// Execute reads req.Path, selects req.Expr and turns every color token into a
// swatch. Values that do not parse as colors are reported in Issues and left
// out; they are never replaced by a default color.
func (uc *ImportTokens) Execute(ctx context.Context, req ImportRequest) (ImportResult, error) {
	body, err := os.ReadFile(req.Path)
	if err != nil {
		return ImportResult{}, &domain.OpError{
			Op:   "import.read",
			Kind: domain.KindNotFound,
			Path: req.Path,
			Err:  err,
		}
	}

	tokens, skips, err := extract.Apply(body, req.Expr)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = req.Path
		}
		return ImportResult{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(req.Path), filepath.Ext(req.Path))
	}

	res := ImportResult{
		Artifact: domain.PaletteArtifact{
			Kind:      domain.ArtifactImport,
			Name:      name,
			Source:    req.Path + "#" + exprOrRoot(req.Expr),
			CreatedAt: uc.now(),
			Swatches:  make([]domain.Swatch, 0, len(tokens)),
		},
		Issues: []ImportIssue{},
	}

	for _, s := range skips {
		res.Issues = append(res.Issues, ImportIssue{Token: s.Name, Message: s.Reason})
	}

	seen := map[string]bool{}
	for _, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return ImportResult{}, err
		}

		swName := tok.Name
		if swName == "" {
			swName = fmt.Sprintf("color-%d", len(res.Artifact.Swatches)+1)
		}
		key := strings.ToLower(swName)
		if seen[key] {
			res.Issues = append(res.Issues, ImportIssue{Token: swName, Value: tok.Value, Message: "duplicate token name"})
			continue
		}

		rgb, err := colorspace.Parse(tok.Value)
		if err != nil {
			uc.log.Warn("import.swatch_invalid", "token", swName, "value", tok.Value, "err", err)
			res.Issues = append(res.Issues, ImportIssue{Token: swName, Value: tok.Value, Message: err.Error()})
			continue
		}

		seen[key] = true
		res.Artifact.Swatches = append(res.Artifact.Swatches, domain.Swatch{
			Name: swName,
			Hex:  colorspace.RGBToHex(rgb),
		})
	}

	uc.log.Info("import.done", "path", req.Path, "swatches", len(res.Artifact.Swatches), "issues", len(res.Issues))

	if len(res.Artifact.Swatches) == 0 {
		return res, &domain.OpError{
			Op:   "import.tokens",
			Kind: domain.KindInvalidFormat,
			Path: req.Path,
			Err:  fmt.Errorf("%w: no color tokens found", domain.ErrInvalidFormat),
		}
	}

	art, id, err := save(uc.settings, uc.store, req.Save, res.Artifact)
	res.Artifact = art
	res.ID = id
	return res, err
}

func exprOrRoot(expr string) string {
	if strings.TrimSpace(expr) == "" {
		return "$"
	}
	return strings.TrimSpace(expr)
}
