package translate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/docutil/helptrans/pkg/descriptor"
	"github.com/docutil/helptrans/pkg/logger"
)

var sourceLog = logger.New("translate:source")

// Enumeration is the configuration a Source produces for one build: the
// document identifier, the ordered target languages, the ordered page
// basenames, and any non-fatal diagnostics gathered along the way.
type Enumeration struct {
	DocID       string
	Languages   []string
	Pages       []string
	Diagnostics []string
}

// Source determines the set of languages and pages to translate. The two
// implementations correspond to the two configuration modes: a literal
// language list (StaticSource) and a descriptor file (DescriptorSource).
type Source interface {
	Enumerate(cfg Config) (*Enumeration, error)
}

// StaticSource enumerates from a literal language list. Pages are discovered
// by scanning the canonical directory; no document identifier is produced,
// so install paths omit the doc-id segment.
type StaticSource struct {
	Languages []string
}

// Enumerate implements Source.
func (s StaticSource) Enumerate(cfg Config) (*Enumeration, error) {
	cfg = cfg.withDefaults()
	enum := &Enumeration{Languages: s.Languages}
	enum.Diagnostics = append(enum.Diagnostics, validateLanguages(s.Languages)...)

	pages, err := discoverPages(cfg)
	if err != nil {
		return nil, err
	}
	enum.Pages = pages
	sourceLog.Printf("Static enumeration: languages=%d, pages=%d", len(enum.Languages), len(enum.Pages))
	return enum, nil
}

// DescriptorSource enumerates from a descriptor file. Pages present on disk
// but absent from the declared HELP_FILES list are still processed, with a
// warning per page. A missing or incomplete descriptor degrades to empty
// values; it never fails the enumeration.
type DescriptorSource struct {
	// Path of the descriptor file. Empty means <HelpDir>/HELPFILE.
	Path string
}

// Enumerate implements Source.
func (s DescriptorSource) Enumerate(cfg Config) (*Enumeration, error) {
	cfg = cfg.withDefaults()
	path := s.Path
	if path == "" {
		path = filepath.Join(cfg.HelpDir, descriptor.DefaultFilename)
	}

	enum := &Enumeration{}
	desc, err := descriptor.ParseFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			enum.Diagnostics = append(enum.Diagnostics,
				fmt.Sprintf("descriptor %s not found", path))
		} else {
			// Unreadable rather than absent; still degrade, but say why.
			enum.Diagnostics = append(enum.Diagnostics,
				fmt.Sprintf("descriptor %s unreadable: %v", path, err))
		}
		desc = &descriptor.Descriptor{}
	}

	for _, problem := range desc.Problems {
		enum.Diagnostics = append(enum.Diagnostics,
			fmt.Sprintf("descriptor %s: %s", path, problem))
	}

	enum.DocID = desc.ID
	enum.Languages = desc.Linguas
	enum.Diagnostics = append(enum.Diagnostics, validateLanguages(desc.Linguas)...)

	pages, err := discoverPages(cfg)
	if err != nil {
		return nil, err
	}
	enum.Pages = pages

	declared := make(map[string]bool, len(desc.Files))
	for _, f := range desc.Files {
		declared[f] = true
	}
	for _, page := range pages {
		if !declared[page] {
			enum.Diagnostics = append(enum.Diagnostics,
				fmt.Sprintf("page %s exists on disk but is not declared in %s", page, descriptor.KeyFiles))
		}
	}

	sourceLog.Printf("Descriptor enumeration: id=%q, languages=%d, pages=%d, diagnostics=%d",
		enum.DocID, len(enum.Languages), len(enum.Pages), len(enum.Diagnostics))
	return enum, nil
}

// discoverPages scans the canonical directory for page files. A missing
// canonical directory yields an empty page list rather than an error; the
// tree may legitimately hold no pages yet.
func discoverPages(cfg Config) ([]string, error) {
	dir := filepath.Join(cfg.HelpDir, cfg.CanonicalDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			sourceLog.Printf("Canonical directory missing: %s", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan canonical directory %s: %w", dir, err)
	}

	var pages []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), cfg.PageExt) {
			continue
		}
		pages = append(pages, entry.Name())
	}
	sourceLog.Printf("Discovered %d pages under %s", len(pages), dir)
	return pages, nil
}

// validateLanguages checks language codes against BCP-47. Invalid codes are
// warned about but kept; enumeration must not drop configured work.
func validateLanguages(codes []string) []string {
	var diags []string
	for _, code := range codes {
		if _, err := language.Parse(code); err != nil {
			diags = append(diags,
				fmt.Sprintf("language code %q is not a valid language tag", code))
		}
	}
	return diags
}
