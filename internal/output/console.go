package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rgehrsitz/payrolltr/internal/domain"
)

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorMuted   = lipgloss.Color("#626262")
	colorWarning = lipgloss.Color("#FFA500")
	colorBorder  = lipgloss.Color("#383838")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	labelStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)

	headerCellStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	monthCellStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)
	totalCellStyle  = cellStyle.Bold(true)
)

// ConsoleFormatter renders a projection as a styled month-per-row table
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.SalaryProjectionResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("no result to format")
	}
	var buf bytes.Buffer

	direction := "Brütten Nete"
	if !result.Request.AmountIsGross {
		direction = "Netten Brüte"
	}

	fmt.Fprintln(&buf, titleStyle.Render(fmt.Sprintf("MAAŞ HESAPLAMA %d", result.Request.Year)))
	fmt.Fprintf(&buf, "%s %s\n", labelStyle.Render("Hesaplama:"), direction)
	fmt.Fprintf(&buf, "%s %s TL\n", labelStyle.Render("Girilen Tutar:"), FormatCurrency(result.Request.Amount))
	fmt.Fprintf(&buf, "%s %s TL\n", labelStyle.Render("Brüt Ücret:"), FormatCurrency(result.GrossSalary))
	fmt.Fprintf(&buf, "%s %s\n", labelStyle.Render("Başlangıç Ayı:"), domain.MonthName(result.Request.StartMonth))
	if !result.CalculatedAt.IsZero() {
		fmt.Fprintf(&buf, "%s %s\n", labelStyle.Render("Hesaplama Tarihi:"), result.CalculatedAt.Format("2006-01-02 15:04:05"))
	}
	if result.Approximate {
		msg := "UYARI: net-brüt çözümü yakınsamadı, sonuçlar yaklaşıktır"
		if result.Warning != nil {
			msg = fmt.Sprintf("%s (%d iterasyon, fark %s)", msg, result.Warning.Iterations, result.Warning.Residual.StringFixed(2))
		}
		fmt.Fprintln(&buf, warningStyle.Render(msg))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, renderTable(result))
	return buf.Bytes(), nil
}

func renderTable(result *domain.SalaryProjectionResult) string {
	cols := Columns(result)
	totals := result.Totals()

	rows := make([][]string, 0, len(result.Months)+1)
	for _, m := range result.Months {
		row := make([]string, 0, len(cols)+1)
		row = append(row, m.MonthName)
		for _, col := range cols {
			row = append(row, FormatCurrency(col.Value(m)))
		}
		rows = append(rows, row)
	}

	totalRow := make([]string, 0, len(cols)+1)
	totalRow = append(totalRow, "Toplam")
	for _, col := range cols {
		if col.Total == nil {
			totalRow = append(totalRow, FormatCurrency(result.FinalCumulativeTaxBase()))
			continue
		}
		totalRow = append(totalRow, FormatCurrency(col.Total(totals)))
	}
	rows = append(rows, totalRow)
	lastRow := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(Headers(result)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCellStyle
			case row == lastRow:
				return totalCellStyle
			case col == 0:
				return monthCellStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
