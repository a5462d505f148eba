package domain

// monthNamesTR are the Turkish calendar month names, January first
var monthNamesTR = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// MonthName returns the Turkish name of a 1-based month, or "" when out of range
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNamesTR[month-1]
}
