// Package seed loads initial reference data from a YAML file through the
// service layer, so seeded rows pass the same validation and guards as API
// writes.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"
	"test-manager-backend/internal/service"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Date is a calendar date written as YYYY-MM-DD
type Date struct {
	time.Time
}

// UnmarshalYAML parses a YYYY-MM-DD scalar
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("line %d: invalid date %q, expected YYYY-MM-DD", node.Line, raw)
	}
	d.Time = t
	return nil
}

// File is the layout of the seed file
type File struct {
	UserRoles    []UserRoleData   `yaml:"user_roles"`
	TestStatuses []TestStatusData `yaml:"test_statuses"`
	Users        []UserData       `yaml:"users"`
	Projects     []ProjectData    `yaml:"projects"`
}

type UserRoleData struct {
	RoleName    string `yaml:"role_name"`
	Description string `yaml:"description"`
}

type TestStatusData struct {
	StatusName  string `yaml:"status_name"`
	Description string `yaml:"description"`
}

type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	RoleName string `yaml:"role_name,omitempty"`
}

type ComponentData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type ProjectData struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	StartDate   Date            `yaml:"start_date"`
	EndDate     Date            `yaml:"end_date"`
	Components  []ComponentData `yaml:"components,omitempty"`
}

// Summary counts what a load created and skipped
type Summary struct {
	UserRoles    int `json:"user_roles"`
	TestStatuses int `json:"test_statuses"`
	Users        int `json:"users"`
	Projects     int `json:"projects"`
	Components   int `json:"components"`
	Skipped      int `json:"skipped"`
}

// Parse decodes a seed file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &file, nil
}

// Loader writes seed data through the services
type Loader struct {
	services *service.Services
	log      *logger.Logger
}

// NewLoader creates a loader over services
func NewLoader(services *service.Services) *Loader {
	return &Loader{
		services: services,
		log:      logger.New().WithField("component", "seed"),
	}
}

// LoadFile reads path and applies it
func (l *Loader) LoadFile(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return l.Apply(file)
}

// Apply creates roles, statuses, users, then projects with their components.
// Entries that already exist are skipped; any other failure stops the load.
func (l *Loader) Apply(file *File) (*Summary, error) {
	summary := &Summary{}

	for _, role := range file.UserRoles {
		_, err := l.services.UserRole.Create(&service.UserRoleRequest{
			RoleName:    role.RoleName,
			Description: role.Description,
		})
		created, err := l.tolerate(summary, "user role", role.RoleName, err)
		if err != nil {
			return summary, err
		}
		if created {
			summary.UserRoles++
		}
	}

	for _, status := range file.TestStatuses {
		_, err := l.services.TestStatus.Create(&service.TestStatusRequest{
			StatusName:  status.StatusName,
			Description: status.Description,
		})
		created, err := l.tolerate(summary, "test status", status.StatusName, err)
		if err != nil {
			return summary, err
		}
		if created {
			summary.TestStatuses++
		}
	}

	if err := l.applyUsers(file.Users, summary); err != nil {
		return summary, err
	}

	if err := l.applyProjects(file.Projects, summary); err != nil {
		return summary, err
	}

	l.log.WithFields(map[string]interface{}{
		"user_roles":    summary.UserRoles,
		"test_statuses": summary.TestStatuses,
		"users":         summary.Users,
		"projects":      summary.Projects,
		"components":    summary.Components,
		"skipped":       summary.Skipped,
	}).Info("Seed data loaded")

	return summary, nil
}

func (l *Loader) applyUsers(users []UserData, summary *Summary) error {
	if len(users) == 0 {
		return nil
	}

	roles, err := l.services.UserRole.GetAll()
	if err != nil {
		return err
	}
	roleIDs := make(map[string]int64, len(roles))
	for _, role := range roles {
		roleIDs[strings.ToLower(role.RoleName)] = role.ID
	}

	for _, user := range users {
		req := &service.UserRequest{
			Name:     user.Name,
			Email:    user.Email,
			Password: user.Password,
		}
		if user.RoleName != "" {
			id, ok := roleIDs[strings.ToLower(user.RoleName)]
			if !ok {
				return fmt.Errorf("user %q: unknown role %q", user.Email, user.RoleName)
			}
			req.RoleID = &id
		}

		_, err := l.services.User.Create(req)
		created, err := l.tolerate(summary, "user", user.Email, err)
		if err != nil {
			return err
		}
		if created {
			summary.Users++
		}
	}
	return nil
}

func (l *Loader) applyProjects(projects []ProjectData, summary *Summary) error {
	if len(projects) == 0 {
		return nil
	}

	existing, err := l.services.Project.GetAll()
	if err != nil {
		return err
	}

	for _, project := range projects {
		resp, err := l.services.Project.Create(&service.ProjectRequest{
			Name:        project.Name,
			Description: project.Description,
			StartDate:   project.StartDate.Time,
			EndDate:     project.EndDate.Time,
		})
		created, err := l.tolerate(summary, "project", project.Name, err)
		if err != nil {
			return err
		}

		var projectID int64
		if created {
			summary.Projects++
			projectID = resp.ID
		} else {
			projectID = findProject(existing, project.Name)
			if projectID == 0 {
				continue
			}
		}

		for _, component := range project.Components {
			_, err := l.services.Component.Create(&service.ComponentRequest{
				ProjectID:   projectID,
				Name:        component.Name,
				Description: component.Description,
			})
			created, err := l.tolerate(summary, "component", project.Name+"/"+component.Name, err)
			if err != nil {
				return err
			}
			if created {
				summary.Components++
			}
		}
	}
	return nil
}

// tolerate reports whether the entry was created. A conflict is logged and
// counted as skipped; any other error is returned with the entry name.
func (l *Loader) tolerate(summary *Summary, entity, name string, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if apperrors.IsConflict(err) {
		summary.Skipped++
		l.log.WithFields(map[string]interface{}{
			"entity": entity,
			"name":   name,
		}).Warn("Skipping existing entry")
		return false, nil
	}
	return false, fmt.Errorf("seed %s %q: %w", entity, name, err)
}

func findProject(projects []service.ProjectResponse, name string) int64 {
	for _, p := range projects {
		if strings.EqualFold(p.Name, name) {
			return p.ID
		}
	}
	return 0
}
