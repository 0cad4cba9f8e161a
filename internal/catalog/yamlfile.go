package catalog

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
)

// yamlProduct mirrors model.Product with yaml tags.
type yamlProduct struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	Category          string   `yaml:"category"`
	Industry          string   `yaml:"industry"`
	TargetSize        string   `yaml:"target_size"`
	DistributionModel string   `yaml:"distribution_model"`
	Regions           []string `yaml:"regions"`
}

// yamlCatalog is the on-disk shape: products grouped per seller.
type yamlCatalog struct {
	Sellers map[string][]yamlProduct `yaml:"sellers"`
}

// YAMLStore serves the catalog from a YAML file loaded at startup.
type YAMLStore struct {
	sellers map[string][]model.Product
}

// NewYAMLFile loads a YAML catalog. An empty path yields an empty
// catalog, which is valid: product fit then scores zero.
func NewYAMLFile(path string) (*YAMLStore, error) {
	s := &YAMLStore{sellers: make(map[string][]model.Product)}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}

	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrapf(err, "catalog: parse %s", path)
	}

	for seller, products := range raw.Sellers {
		out := make([]model.Product, 0, len(products))
		for _, p := range products {
			out = append(out, model.Product{
				ID:                p.ID,
				Name:              p.Name,
				Category:          p.Category,
				Industry:          p.Industry,
				TargetSize:        p.TargetSize,
				DistributionModel: p.DistributionModel,
				Regions:           p.Regions,
			})
		}
		s.sellers[seller] = out
	}

	return s, nil
}

func (s *YAMLStore) ListProducts(_ context.Context, sellerID string) ([]model.Product, error) {
	return s.sellers[sellerID], nil
}

func (s *YAMLStore) Close() error {
	return nil
}
