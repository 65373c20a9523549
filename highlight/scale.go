package highlight

// Scale maps a data value on one axis to a pixel coordinate.
type Scale interface {
	Value(v any) float64
	Dim() string
}

// CategoryScale is the color axis: an ordered category domain plus a color token per category.
type CategoryScale interface {
	Dim() string
	Domain() []string
	Color(category string) string
}

// Dimension is an axis that only contributes its field name.
type Dimension string

func (d Dimension) Dim() string { return string(d) }

// LinearScale maps a numeric (or time) domain onto a pixel range.
type LinearScale struct {
	dim       string
	min, max  float64
	from, to  float64
	hasDomain bool
}

func NewLinearScale(dim string, domainMin, domainMax, rangeFrom, rangeTo float64) *LinearScale {
	return &LinearScale{
		dim:       dim,
		min:       domainMin,
		max:       domainMax,
		from:      rangeFrom,
		to:        rangeTo,
		hasDomain: true,
	}
}

// FitLinearScale derives the domain from the dim values found in rows.
func FitLinearScale(rows []Row, dim string, rangeFrom, rangeTo float64) *LinearScale {
	s := &LinearScale{dim: dim, from: rangeFrom, to: rangeTo}
	for _, r := range rows {
		n, ok := Numeric(r.Get(dim))
		if !ok {
			continue
		}
		if !s.hasDomain {
			s.min, s.max = n, n
			s.hasDomain = true
			continue
		}
		if n < s.min {
			s.min = n
		}
		if n > s.max {
			s.max = n
		}
	}
	return s
}

func (s *LinearScale) Dim() string { return s.dim }

func (s *LinearScale) Value(v any) float64 {
	n, ok := Numeric(v)
	if !ok || !s.hasDomain {
		return s.from
	}
	if s.max == s.min {
		return (s.from + s.to) / 2
	}
	return s.from + (n-s.min)/(s.max-s.min)*(s.to-s.from)
}

// OrdinalColors assigns colors to categories in domain order, cycling the palette.
type OrdinalColors struct {
	dim     string
	domain  []string
	palette []string
	byKey   map[string]string
}

func NewOrdinalColors(dim string, domain []string, palette []string) *OrdinalColors {
	c := &OrdinalColors{
		dim:     dim,
		domain:  append([]string(nil), domain...),
		palette: append([]string(nil), palette...),
		byKey:   make(map[string]string, len(domain)),
	}
	for i, cat := range c.domain {
		if len(c.palette) == 0 {
			break
		}
		c.byKey[cat] = c.palette[i%len(c.palette)]
	}
	return c
}

func (c *OrdinalColors) Dim() string      { return c.dim }
func (c *OrdinalColors) Domain() []string { return append([]string(nil), c.domain...) }

func (c *OrdinalColors) Color(category string) string {
	return c.byKey[category]
}

// Order returns the position of category in the domain, or len(domain) when unknown.
func (c *OrdinalColors) Order(category string) int {
	for i, cat := range c.domain {
		if cat == category {
			return i
		}
	}
	return len(c.domain)
}
