package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tasktracker/internal/models"
)

// ReportGenerator — интерфейс (удобно мокать в тестах)
type ReportGenerator interface {
	TaskCard(task *models.TaskResponse) ([]byte, error)
}

// TaskReportGenerator рендерит карточку задачи с комментариями.
// Состояния между вызовами нет, один генератор можно дёргать параллельно.
type TaskReportGenerator struct {
	FontPath string // путь до TTF с кириллицей; пусто — встроенный Helvetica
}

func NewTaskReportGenerator(fontPath string) *TaskReportGenerator {
	return &TaskReportGenerator{FontPath: fontPath}
}

// resolveFont регистрирует кастомный шрифт в документе и возвращает имя
// шрифта для этого вызова.
func (g *TaskReportGenerator) resolveFont(doc *gofpdf.Fpdf) string {
	if g.FontPath == "" {
		return "Helvetica"
	}
	doc.AddUTF8Font("custom", "", g.FontPath)
	doc.AddUTF8Font("custom", "B", g.FontPath)
	return "custom"
}

func (g *TaskReportGenerator) TaskCard(task *models.TaskResponse) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Task: %s", task.Title), true)
	doc.SetAuthor("Task Tracker", false)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)

	font := g.resolveFont(doc)
	doc.AddPage()

	// ===== Заголовок
	doc.SetFont(font, "B", 18)
	doc.CellFormat(0, 10, "TASK REPORT", "", 1, "C", false, 0, "")

	doc.SetFont(font, "", 12)
	sub := fmt.Sprintf("generated %s", time.Now().Format("2006-01-02 15:04"))
	doc.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(doc)
	doc.Ln(3)

	// ===== Карточка
	g.sectionTitle(doc, font, "Summary")
	g.kvLine(doc, font, "Title", task.Title)
	g.kvLine(doc, font, "Status", string(task.Status))
	g.kvLine(doc, font, "Priority", string(task.Priority))
	g.kvLine(doc, font, "Author", task.Author)
	g.kvLine(doc, font, "Executor", task.Executor)
	doc.Ln(2)
	g.hr(doc)

	g.sectionTitle(doc, font, "Description")
	doc.SetFont(font, "", 11)
	doc.MultiCell(0, 6, task.Description, "", "L", false)
	doc.Ln(2)
	g.hr(doc)

	// ===== Комментарии
	g.sectionTitle(doc, font, fmt.Sprintf("Comments (%d)", len(task.Comments)))
	doc.SetFont(font, "", 11)
	if len(task.Comments) == 0 {
		doc.MultiCell(0, 6, "—", "", "L", false)
	}
	for _, cm := range task.Comments {
		line := fmt.Sprintf("%s  [%s]", cm.Author, cm.Date)
		doc.SetFont(font, "B", 11)
		doc.MultiCell(0, 6, line, "", "L", false)
		doc.SetFont(font, "", 11)
		doc.MultiCell(0, 6, cm.Text, "", "L", false)
		doc.Ln(1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render task pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *TaskReportGenerator) sectionTitle(doc *gofpdf.Fpdf, font, title string) {
	doc.SetFont(font, "B", 13)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func (g *TaskReportGenerator) kvLine(doc *gofpdf.Fpdf, font, key, value string) {
	doc.SetFont(font, "B", 11)
	doc.CellFormat(45, 6, key, "", 0, "L", false, 0, "")
	doc.SetFont(font, "", 11)
	doc.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *TaskReportGenerator) hr(doc *gofpdf.Fpdf) {
	x, y := doc.GetX(), doc.GetY()
	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	doc.Line(left, y, pageW-right, y)
	doc.SetXY(x, y+1)
}
