package site

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"axiomai.dev/marketplace-web/internal/catalog"
	"axiomai.dev/marketplace-web/internal/pricing"
)

//go:embed fixtures/*.yaml
var defaultFixtures embed.FS

const (
	siteFile   = "site.yaml"
	agentsFile = "agents.yaml"
	plansFile  = "plans.yaml"
)

// Link is a labelled call to action.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Hero is the landing banner copy.
type Hero struct {
	Chip              string   `yaml:"chip"`
	ChipBadge         string   `yaml:"chip_badge"`
	Title             []string `yaml:"title"`
	Subtitle          string   `yaml:"subtitle"`
	SearchPlaceholder string   `yaml:"search_placeholder"`
	SearchButton      string   `yaml:"search_button"`
	PrimaryCTA        Link     `yaml:"primary_cta"`
	SecondaryCTA      Link     `yaml:"secondary_cta"`
	Image             string   `yaml:"image"`
	ImageAlt          string   `yaml:"image_alt"`
	ParallaxSpeed     float64  `yaml:"parallax_speed"`
}

// MarketplaceCopy is the static text around the listing grid.
type MarketplaceCopy struct {
	Title             string `yaml:"title"`
	Subtitle          string `yaml:"subtitle"`
	SearchPlaceholder string `yaml:"search_placeholder"`
	LoadMore          string `yaml:"load_more"`
}

// PricingCopy is the static text around the plan grid.
type PricingCopy struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	FAQTitle string `yaml:"faq_title"`
}

// Content is everything the site renders, loaded once at startup.
type Content struct {
	Name        string
	Hero        Hero
	Marketplace MarketplaceCopy
	Pricing     PricingCopy
	Catalog     *catalog.Dataset
	Plans       *pricing.Catalog
}

type siteDoc struct {
	Name        string          `yaml:"name"`
	Hero        Hero            `yaml:"hero"`
	Marketplace MarketplaceCopy `yaml:"marketplace"`
	Pricing     PricingCopy     `yaml:"pricing"`
}

type agentsDoc struct {
	Categories []string          `yaml:"categories"`
	Listings   []catalog.Listing `yaml:"listings"`
}

type plansDoc struct {
	Plans []pricing.Plan `yaml:"plans"`
	FAQs  []pricing.FAQ  `yaml:"faqs"`
}

// Load reads site, agent and plan fixtures from dir, or the embedded defaults when dir is empty.
func Load(dir string) (*Content, error) {
	var fsys fs.FS
	if strings.TrimSpace(dir) == "" {
		sub, err := fs.Sub(defaultFixtures, "fixtures")
		if err != nil {
			return nil, fmt.Errorf("site: embedded fixtures: %w", err)
		}
		fsys = sub
	} else {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("site: data dir: %w", err)
		}
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

// LoadFS reads fixtures from fsys.
func LoadFS(fsys fs.FS) (*Content, error) {
	var sd siteDoc
	if err := decodeFile(fsys, siteFile, &sd); err != nil {
		return nil, err
	}
	var ad agentsDoc
	if err := decodeFile(fsys, agentsFile, &ad); err != nil {
		return nil, err
	}
	var pd plansDoc
	if err := decodeFile(fsys, plansFile, &pd); err != nil {
		return nil, err
	}

	ds, err := catalog.NewDataset(ad.Categories, ad.Listings)
	if err != nil {
		return nil, fmt.Errorf("site: %s: %w", agentsFile, err)
	}
	plans, err := pricing.NewCatalog(pd.Plans, pd.FAQs)
	if err != nil {
		return nil, fmt.Errorf("site: %s: %w", plansFile, err)
	}

	name := strings.TrimSpace(sd.Name)
	if name == "" {
		name = "AXIOM AI"
	}
	return &Content{
		Name:        name,
		Hero:        sd.Hero,
		Marketplace: sd.Marketplace,
		Pricing:     sd.Pricing,
		Catalog:     ds,
		Plans:       plans,
	}, nil
}

func decodeFile(fsys fs.FS, name string, v any) error {
	raw, err := fs.ReadFile(fsys, filepath.ToSlash(name))
	if err != nil {
		return fmt.Errorf("site: read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("site: %s is empty", name)
		}
		return fmt.Errorf("site: parse %s: %w", name, err)
	}
	return nil
}
