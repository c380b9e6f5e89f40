package application

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/internal/domain/form"
	"github.com/reqflow-io/reqflow/internal/repository"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

func (s *FormService) ListForms() ([]form.Form, error) {
	return s.Repos.Form.ListForms()
}

func (s *FormService) GetForm(id uuid.UUID) (form.Form, error) {
	return s.Repos.Form.GetFormByID(id)
}

func (s *FormService) CreateForm(input form.CreateFormDTO) (*form.Form, error) {
	f := buildForm(input)
	return f, s.Repos.Form.CreateForm(f)
}

// templateSeed is the YAML shape of a seeded form template.
type templateSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Sections    []struct {
		Name           string `yaml:"name"`
		IsDuplicatable bool   `yaml:"is_duplicatable"`
		Fields         []struct {
			Name           string   `yaml:"name"`
			Type           string   `yaml:"type"`
			IsRequired     bool     `yaml:"is_required"`
			LookupKey      string   `yaml:"lookup_key"`
			IsSignerDriver bool     `yaml:"is_signer_driver"`
			SignerScope    string   `yaml:"signer_scope"`
			Options        []string `yaml:"options"`
		} `yaml:"fields"`
	} `yaml:"sections"`
}

// ParseTemplateSeed decodes one YAML template definition.
func ParseTemplateSeed(data []byte) (form.CreateFormDTO, error) {
	var seed templateSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return form.CreateFormDTO{}, err
	}
	dto := form.CreateFormDTO{Name: seed.Name, Description: seed.Description}
	for _, sec := range seed.Sections {
		secDTO := form.CreateSectionDTO{Name: sec.Name, IsDuplicatable: sec.IsDuplicatable}
		for _, f := range sec.Fields {
			secDTO.Fields = append(secDTO.Fields, form.CreateFieldDTO{
				Name:           f.Name,
				Type:           form.FieldType(f.Type),
				IsRequired:     f.IsRequired,
				LookupKey:      f.LookupKey,
				IsSignerDriver: f.IsSignerDriver,
				SignerScope:    form.SignerScope(f.SignerScope),
				Options:        f.Options,
			})
		}
		dto.Sections = append(dto.Sections, secDTO)
	}
	return dto, nil
}

// SeedTemplates loads every *.yaml template under dir, creating the forms
// that do not exist yet. Already-seeded templates are left alone.
func (s *FormService) SeedTemplates(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		dto, err := ParseTemplateSeed(data)
		if err != nil {
			return err
		}
		if _, err := s.Repos.Form.GetFormByName(dto.Name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := s.CreateForm(dto); err != nil {
			return err
		}
		log.Printf("Seeded form template %q from %s", dto.Name, entry.Name())
	}
	return nil
}

func buildForm(input form.CreateFormDTO) *form.Form {
	f := &form.Form{
		Name:        input.Name,
		Description: input.Description,
	}
	for si, secIn := range input.Sections {
		sec := form.Section{
			Name:           secIn.Name,
			Order:          si,
			IsDuplicatable: secIn.IsDuplicatable,
		}
		for fi, fieldIn := range secIn.Fields {
			fld := form.Field{
				Name:           fieldIn.Name,
				Type:           fieldIn.Type,
				Order:          fi,
				IsRequired:     fieldIn.IsRequired,
				LookupKey:      fieldIn.LookupKey,
				IsSignerDriver: fieldIn.IsSignerDriver,
				SignerScope:    fieldIn.SignerScope,
			}
			for oi, value := range fieldIn.Options {
				fld.Options = append(fld.Options, form.Option{Value: value, Order: oi})
			}
			sec.Fields = append(sec.Fields, fld)
		}
		f.Sections = append(f.Sections, sec)
	}
	return f
}
