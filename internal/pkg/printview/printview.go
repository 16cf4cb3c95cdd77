package printview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/validator"
)

//go:embed templates/*.html
var templateFS embed.FS

const displayDateLayout = "Jan 02, 2006"

// Renderer writes printable HTML pages for employees.
type Renderer interface {
	EmployeeSheet(w io.Writer, emp employee.Employee) error
	EmployeeTable(w io.Writer, employees []employee.Employee, stats employee.Stats) error
}

type rendererImpl struct {
	templates *template.Template
}

func NewRenderer() (Renderer, error) {
	tmpl, err := template.New("printview").Funcs(template.FuncMap{
		"formatDOB":   formatDOB,
		"imageSrc":    imageSrc,
		"statusClass": statusClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse print templates: %w", err)
	}

	return &rendererImpl{templates: tmpl}, nil
}

// EmployeeSheet renders the single-employee detail page.
func (r *rendererImpl) EmployeeSheet(w io.Writer, emp employee.Employee) error {
	return r.execute(w, "employee.html", emp)
}

type employeeTableData struct {
	Employees []employee.Employee
	Stats     employee.Stats
}

// EmployeeTable renders the list page for the given (usually filtered) employees.
func (r *rendererImpl) EmployeeTable(w io.Writer, employees []employee.Employee, stats employee.Stats) error {
	return r.execute(w, "employees.html", employeeTableData{Employees: employees, Stats: stats})
}

// execute renders into a buffer first so a failed template never leaves a
// partial page on w.
func (r *rendererImpl) execute(w io.Writer, name string, data any) error {
	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, name, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	_, err := body.WriteTo(w)
	return err
}

func formatDOB(dob string) string {
	d, err := time.Parse(validator.DateLayout, dob)
	if err != nil {
		return dob
	}
	return d.Format(displayDateLayout)
}

// imageSrc only marks validated data:image URIs as safe. Anything else renders no image.
func imageSrc(image string) template.URL {
	if !validator.IsDataImageURI(image) {
		return ""
	}
	return template.URL(image)
}

func statusClass(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
