// Package config loads frame graph descriptions from YAML files.
package config

import (
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"go.trai.ch/framegraph/internal/core/domain"
	"go.trai.ch/framegraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the graph file looked up when no path is given.
const DefaultFilename = "graph.yaml"

// DefaultExtent is the window extent used when a graph file does not name one.
var DefaultExtent = domain.Extent2D{Width: 1280, Height: 720}

// Loader implements ports.ConfigLoader for YAML graph files.
type Loader struct {
	logger ports.Logger
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader returns a loader that logs through logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the graph file at path.
func (l *Loader) Load(path string) (*domain.GraphSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	l.logger.Debug("loaded graph file", "path", path, "resources", len(spec.Resources), "passes", len(spec.Passes))
	return spec, nil
}

// Parse decodes a graph file.
func Parse(data []byte) (*domain.GraphSpec, error) {
	var file Graphfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	spec := &domain.GraphSpec{
		Name:           file.Name,
		FramesInFlight: file.FramesInFlight,
		Extent:         DefaultExtent,
	}
	if spec.FramesInFlight == 0 {
		spec.FramesInFlight = domain.DefaultFramesInFlight
	}
	if file.Extent != nil {
		e, err := parseExtent(file.Extent)
		if err != nil {
			return nil, zerr.With(err, "field", "extent")
		}
		spec.Extent = e
	}

	names := make(map[string]bool, len(file.Resources))
	for _, dto := range file.Resources {
		res, err := parseResource(dto)
		if err != nil {
			return nil, zerr.With(err, "resource", dto.Name)
		}
		if names[res.Name] {
			return nil, zerr.With(domain.ErrDuplicateResource, "resource", res.Name)
		}
		names[res.Name] = true
		spec.Resources = append(spec.Resources, res)
	}

	for _, dto := range file.Passes {
		p, err := parsePass(dto, names)
		if err != nil {
			return nil, zerr.With(err, "pass", dto.Name)
		}
		spec.Passes = append(spec.Passes, p)
	}
	return spec, nil
}

func parseExtent(v []uint32) (domain.Extent2D, error) {
	if len(v) != 2 || v[0] == 0 || v[1] == 0 {
		return domain.Extent2D{}, zerr.With(domain.ErrInvalidExtent, "extent", v)
	}
	return domain.Extent2D{Width: v[0], Height: v[1]}, nil
}

func parseResource(dto ResourceDTO) (domain.ResourceSpec, error) {
	if dto.Name == "" {
		return domain.ResourceSpec{}, zerr.New("resource name is required")
	}
	format, err := domain.ParseFormat(dto.Format)
	if err != nil {
		return domain.ResourceSpec{}, err
	}
	res := domain.ResourceSpec{Name: dto.Name, Format: format, Scale: mgl32.Vec2{1, 1}}

	switch dto.Size {
	case "", "relative":
		res.Size = domain.SizeRelative
		if dto.Scale != nil {
			if len(dto.Scale) != 2 || dto.Scale[0] <= 0 || dto.Scale[1] <= 0 {
				return domain.ResourceSpec{}, zerr.With(zerr.New("scale must be two positive numbers"), "scale", dto.Scale)
			}
			res.Scale = mgl32.Vec2{dto.Scale[0], dto.Scale[1]}
		}
	case "absolute":
		res.Size = domain.SizeAbsolute
		if res.Extent, err = parseExtent(dto.Extent); err != nil {
			return domain.ResourceSpec{}, err
		}
	default:
		return domain.ResourceSpec{}, zerr.With(zerr.New("unknown size mode"), "size", dto.Size)
	}
	return res, nil
}

func parsePass(dto PassDTO, resources map[string]bool) (domain.PassSpec, error) {
	if dto.Name == "" {
		return domain.PassSpec{}, zerr.New("pass name is required")
	}
	p := domain.PassSpec{Name: dto.Name, Output: dto.Output, Draws: dto.Draws}
	for _, u := range dto.Uses {
		if !resources[u.Resource] {
			return domain.PassSpec{}, zerr.With(domain.ErrUnknownResource, "resource", u.Resource)
		}
		usage, err := domain.ParseUsage(u.Usage)
		if err != nil {
			return domain.PassSpec{}, err
		}
		access := domain.AccessRead
		if usage != domain.UsageInputAttachment {
			if access, err = domain.ParseAccess(u.Access); err != nil {
				return domain.PassSpec{}, err
			}
		}
		use := domain.UseSpec{Resource: u.Resource, Usage: usage, Access: access}
		if u.Clear != nil {
			use.Clear = clearValue(*u.Clear)
		}
		p.Uses = append(p.Uses, use)
	}
	return p, nil
}

func clearValue(c ClearDTO) *domain.ClearValue {
	v := &domain.ClearValue{}
	copy(v.Color[:], c.Color)
	if c.Depth != nil {
		v.Depth = *c.Depth
	}
	return v
}
