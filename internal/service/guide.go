package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/complytrack/complytrack/internal/markdown"
)

// ErrGuidePageNotFound marks an unknown slug, as opposed to a content
// load failure.
var ErrGuidePageNotFound = errors.New("guide page not found")

// GuidePage is a rendered compliance reference article (markdown under
// content/guide).
type GuidePage struct {
	Title   string
	Slug    string
	Summary string
	Content string
}

// GuideService serves the static compliance reference pages. Pages are
// reloaded on every read so edits show up without a restart; the content
// set is a handful of files, so this costs nothing. The service holds no
// state between reads, so concurrent requests never share a map.
type GuideService struct {
	contentDir string
}

func NewGuideService(contentDir string) *GuideService {
	return &GuideService{
		contentDir: filepath.Join(contentDir, "guide"),
	}
}

func (s *GuideService) loadPages() (map[string]*GuidePage, error) {
	pages := make(map[string]*GuidePage)

	files, err := os.ReadDir(s.contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return pages, nil
		}
		return nil, fmt.Errorf("failed to read guide directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(file.Name(), ".md")
		page, err := s.loadPage(slug)
		if err != nil {
			return nil, fmt.Errorf("failed to load page %s: %w", slug, err)
		}

		pages[slug] = page
	}

	return pages, nil
}

func (s *GuideService) loadPage(slug string) (*GuidePage, error) {
	filePath := filepath.Join(s.contentDir, slug+".md")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	parser := markdown.NewParser()
	html, meta, err := parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}
	summary, _ := meta["summary"].(string)

	return &GuidePage{
		Title:   title,
		Slug:    slug,
		Summary: summary,
		Content: string(html),
	}, nil
}

// Pages returns all guide pages, sorted by title.
func (s *GuideService) Pages() ([]*GuidePage, error) {
	loaded, err := s.loadPages()
	if err != nil {
		return nil, err
	}

	pages := make([]*GuidePage, 0, len(loaded))
	for _, p := range loaded {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Title < pages[j].Title })

	return pages, nil
}

// Page returns a single guide page by slug. Returns ErrGuidePageNotFound
// for an unknown slug.
func (s *GuideService) Page(slug string) (*GuidePage, error) {
	loaded, err := s.loadPages()
	if err != nil {
		return nil, err
	}

	page, ok := loaded[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGuidePageNotFound, slug)
	}

	return page, nil
}
