package cv

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// 版面常量，单位毫米；右栏带浅灰底色，占页宽约 35%
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	topMargin    = 14.0
	bottomMargin = 14.0

	leftColX     = 12.0
	leftColRight = 130.0
	rightColBGX  = 136.5
	rightColX    = 142.5
	rightColEnd  = 198.0
)

var (
	accentColor = [3]int{169, 50, 38}
	darkColor   = [3]int{34, 34, 34}
	bodyColor   = [3]int{68, 68, 68}
	mutedColor  = [3]int{102, 102, 102}
	shadeColor  = [3]int{244, 244, 244}
)

// Composer 将规范化的简历文档渲染为 PDF 字节流。
// 自身不持有可变状态，可被多个请求并发调用。
type Composer struct{}

// NewComposer 构造 Composer
func NewComposer() *Composer {
	return &Composer{}
}

// Render 输出 A4 双栏简历，内容超出一页时交由引擎自然分页
func (c *Composer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// 每页先铺右栏底色
	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(shadeColor[0], shadeColor[1], shadeColor[2])
		pdf.Rect(rightColBGX, 0, pageWidth-rightColBGX, pageHeight, "F")
	})
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.AddPage()

	r := &renderer{pdf: pdf, tr: tr}
	r.leftColumn(doc)

	// 右栏回到第一页顶部独立排版
	pdf.SetPage(1)
	r.rightColumn(doc)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render cv pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("output cv pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (r *renderer) leftColumn(doc Document) {
	pdf := r.pdf
	pdf.SetMargins(leftColX, topMargin, pageWidth-leftColRight)
	pdf.SetXY(leftColX, topMargin)

	// 头部：姓名、头衔、联系方式
	r.setColor(darkColor)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.MultiCell(0, 10, r.tr(strings.ToUpper(doc.Name)), "", "L", false)

	r.setColor(accentColor)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 6, r.tr(strings.ToUpper(doc.Title)), "", "L", false)
	pdf.Ln(3)

	r.setColor(bodyColor)
	pdf.SetFont("Helvetica", "", 8.5)
	r.contactLine(doc.Email, "mailto:"+doc.Email)
	r.contactLine(doc.Phone, "")
	r.contactLine(doc.Location, "")
	r.contactLine(stripScheme(doc.Website), doc.Website)
	pdf.Ln(2)

	// 职业目标
	if strings.TrimSpace(doc.Summary) != "" {
		r.sectionTitle("CAREER OBJECTIVE")
		r.setColor(bodyColor)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4.6, r.tr(doc.Summary), "", "L", false)
		pdf.Ln(2)
	}

	// 工作经历
	if len(doc.Experiences) > 0 {
		r.sectionTitle("WORK EXPERIENCE")
		for _, exp := range doc.Experiences {
			r.setColor(darkColor)
			pdf.SetFont("Helvetica", "B", 10.5)
			pdf.MultiCell(0, 5, r.tr(exp.Position), "", "L", false)

			r.setColor(accentColor)
			pdf.SetFont("Helvetica", "B", 9.5)
			pdf.MultiCell(0, 4.6, r.tr(exp.Company), "", "L", false)

			r.setColor(mutedColor)
			pdf.SetFont("Helvetica", "I", 8.5)
			dateRange := FormatDateRange(exp.StartDate, exp.EndDate, exp.Current)
			width := leftColRight - leftColX
			pdf.CellFormat(width/2, 4.4, r.tr(dateRange), "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 8.5)
			pdf.CellFormat(width/2, 4.4, r.tr(exp.Location), "", 1, "R", false, 0, "")
			pdf.Ln(0.6)

			r.bullets(exp.Bullets)
			pdf.Ln(2.4)
		}
	}

	// 项目
	if len(doc.Projects) > 0 {
		r.sectionTitle("PROJECTS")
		for _, project := range doc.Projects {
			r.setColor(darkColor)
			pdf.SetFont("Helvetica", "B", 10.5)
			pdf.MultiCell(0, 5, r.tr(project.Title), "", "L", false)

			if len(project.Technologies) > 0 {
				r.setColor(accentColor)
				pdf.SetFont("Helvetica", "B", 8.5)
				pdf.MultiCell(0, 4.4, r.tr(strings.Join(project.Technologies, " / ")), "", "L", false)
			}

			r.bullets(project.Bullets)
			pdf.Ln(2.4)
		}
	}
}

func (r *renderer) rightColumn(doc Document) {
	pdf := r.pdf
	pdf.SetMargins(rightColX, topMargin, pageWidth-rightColEnd)
	pdf.SetXY(rightColX, topMargin)

	// 教育经历
	if len(doc.Educations) > 0 {
		r.sectionTitle("EDUCATION")
		for _, edu := range doc.Educations {
			r.setColor(darkColor)
			pdf.SetFont("Helvetica", "B", 9.5)
			pdf.MultiCell(0, 4.6, r.tr(edu.Degree), "", "L", false)

			r.setColor(bodyColor)
			pdf.SetFont("Helvetica", "", 9.5)
			pdf.MultiCell(0, 4.6, r.tr(edu.Field), "", "L", false)

			r.setColor(accentColor)
			pdf.SetFont("Helvetica", "B", 9)
			pdf.MultiCell(0, 4.4, r.tr(edu.Institution), "", "L", false)

			r.setColor(mutedColor)
			pdf.SetFont("Helvetica", "", 8.5)
			pdf.MultiCell(0, 4.2, r.tr(FormatYearRange(edu.StartDate, edu.EndDate, edu.Current)), "", "L", false)
			if edu.Location != "" {
				pdf.MultiCell(0, 4.2, r.tr(edu.Location), "", "L", false)
			}
			pdf.Ln(2.4)
		}
	}

	// 技能列表
	if len(doc.Skills) > 0 {
		r.sectionTitle("SKILLS")
		r.setColor(bodyColor)
		pdf.SetFont("Helvetica", "", 9)
		for _, skill := range doc.Skills {
			pdf.MultiCell(0, 4.4, r.tr("• "+skill), "", "L", false)
		}
		pdf.Ln(2)
	}

	// 社交链接
	if doc.HasSocial() {
		r.sectionTitle("SOCIAL")
		r.setColor(accentColor)
		pdf.SetFont("Helvetica", "", 9)
		if doc.LinkedIn != "" {
			pdf.CellFormat(0, 4.8, "LinkedIn", "", 1, "L", false, 0, doc.LinkedIn)
		}
		if doc.GitHub != "" {
			pdf.CellFormat(0, 4.8, "GitHub", "", 1, "L", false, 0, doc.GitHub)
		}
		if doc.Telegram != "" {
			handle := strings.TrimPrefix(doc.Telegram, "@")
			pdf.CellFormat(0, 4.8, "Telegram", "", 1, "L", false, 0, "https://t.me/"+handle)
		}
	}
}

// sectionTitle 渲染带下划线强调的区块标题
func (r *renderer) sectionTitle(title string) {
	pdf := r.pdf
	pdf.Ln(2)
	r.setColor(darkColor)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 5.4, title, "", "L", false)

	left, _, right, _ := pdf.GetMargins()
	y := pdf.GetY() + 0.4
	pdf.SetDrawColor(accentColor[0], accentColor[1], accentColor[2])
	pdf.SetLineWidth(0.6)
	pdf.Line(left, y, pageWidth-right, y)
	pdf.Ln(3.4)
}

func (r *renderer) bullets(lines []string) {
	pdf := r.pdf
	r.setColor(bodyColor)
	pdf.SetFont("Helvetica", "", 9)
	left, _, right, _ := pdf.GetMargins()
	for _, line := range lines {
		pdf.SetX(left)
		pdf.CellFormat(4, 4.4, r.tr("•"), "", 0, "L", false, 0, "")
		pdf.MultiCell(pageWidth-right-left-4, 4.4, r.tr(line), "", "L", false)
	}
}

func (r *renderer) contactLine(text, link string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	r.pdf.CellFormat(0, 4.4, r.tr(text), "", 1, "L", false, 0, link)
}

func (r *renderer) setColor(rgb [3]int) {
	r.pdf.SetTextColor(rgb[0], rgb[1], rgb[2])
}

func stripScheme(rawURL string) string {
	trimmed := strings.TrimPrefix(rawURL, "https://")
	return strings.TrimPrefix(trimmed, "http://")
}

// FileName 根据姓名生成下载用的文件名
func FileName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "CV.pdf"
	}
	return strings.ReplaceAll(trimmed, " ", "_") + "_CV.pdf"
}
