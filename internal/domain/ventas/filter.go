package ventas

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// Formatos de fecha aceptados en filtros, en orden de prueba.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// Criteria filtros opcionales sobre el listado de ventas. Todos se combinan con AND.
type Criteria struct {
	DateFrom   *time.Time // inclusivo
	DateTo     *time.Time // inclusivo
	Consultant string     // subcadena, sin distinguir mayúsculas
	Year       *int
}

// IsEmpty indica si no hay ningún filtro activo.
func (c Criteria) IsEmpty() bool {
	return c.DateFrom == nil && c.DateTo == nil && c.Consultant == "" && c.Year == nil
}

// ParseDate interpreta s como YYYY-MM-DD o DD/MM/YYYY (gana el primero que funcione).
// Vacío o ilegible devuelve nil: "sin límite", nunca error.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseYear interpreta s como año; si no es un entero se ignora (nil).
func ParseYear(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// ParseCriteria construye Criteria desde los parámetros crudos de la petición
// (inicio, fin, consultor, anio).
func ParseCriteria(inicio, fin, consultor, anio string) Criteria {
	return Criteria{
		DateFrom:   ParseDate(inicio),
		DateTo:     ParseDate(fin),
		Consultant: strings.TrimSpace(consultor),
		Year:       ParseYear(anio),
	}
}

// Match indica si v cumple todos los criterios.
func (c Criteria) Match(v *entity.Venta) bool {
	day := dateOnly(v.Fecha)
	if c.DateFrom != nil && day.Before(dateOnly(*c.DateFrom)) {
		return false
	}
	if c.DateTo != nil && day.After(dateOnly(*c.DateTo)) {
		return false
	}
	if c.Year != nil && v.Fecha.Year() != *c.Year {
		return false
	}
	if c.Consultant != "" {
		fold := cases.Fold()
		if !strings.Contains(fold.String(v.NombreConsultor), fold.String(c.Consultant)) {
			return false
		}
	}
	return true
}

// Filter devuelve, sin modificar records, las ventas que cumplen c en el orden recibido.
func Filter(records []*entity.Venta, c Criteria) []*entity.Venta {
	out := make([]*entity.Venta, 0, len(records))
	for _, v := range records {
		if v != nil && c.Match(v) {
			out = append(out, v)
		}
	}
	return out
}

// SortForList ordena por fecha descendente y luego ID descendente (lo más reciente primero).
func SortForList(records []*entity.Venta) {
	sort.SliceStable(records, func(i, j int) bool {
		di, dj := dateOnly(records[i].Fecha), dateOnly(records[j].Fecha)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return records[i].ID > records[j].ID
	})
}

// SortForReport ordena solo por fecha descendente; empates conservan el orden de entrada.
func SortForReport(records []*entity.Venta) {
	sort.SliceStable(records, func(i, j int) bool {
		return dateOnly(records[i].Fecha).After(dateOnly(records[j].Fecha))
	})
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
