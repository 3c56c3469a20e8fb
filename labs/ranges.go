package labs

// valueRange es el rango numérico esperado para un analito de biometría
// hemática, usado para validar y reasignar valores mal atribuidos.
type valueRange struct {
	Name        string
	Min         float64
	Max         float64
	TypicalUnit string
}

// Rangos esperados de la biometría hemática. El orden de la tabla es el
// desempate en la reasignación: ante varios candidatos plausibles gana
// el primero declarado aquí.
var cbcValueRanges = []valueRange{
	{Name: "Eritrocitos", Min: 3.5, Max: 7.0, TypicalUnit: "mill/mm³"},
	{Name: "Hemoglobina", Min: 8.0, Max: 20.0, TypicalUnit: "g/dL"},
	{Name: "Hematocrito", Min: 25.0, Max: 60.0, TypicalUnit: "%"},
	{Name: "VCM", Min: 70.0, Max: 110.0, TypicalUnit: "fL"},
	{Name: "HCM", Min: 20.0, Max: 40.0, TypicalUnit: "pg"},
	{Name: "CHCM", Min: 28.0, Max: 40.0, TypicalUnit: "g/dL"},
	{Name: "RDW", Min: 10.0, Max: 20.0, TypicalUnit: "%"},
	{Name: "Leucocitos", Min: 2.0, Max: 20.0, TypicalUnit: "×10^9/L"},
	{Name: "Linfocitos", Min: 5.0, Max: 60.0, TypicalUnit: "%"},
	{Name: "Monocitos", Min: 0.0, Max: 15.0, TypicalUnit: "%"},
	{Name: "Basófilos", Min: 0.0, Max: 5.0, TypicalUnit: "%"},
	{Name: "Eosinófilos", Min: 0.0, Max: 15.0, TypicalUnit: "%"},
	{Name: "Neutrófilos", Min: 20.0, Max: 85.0, TypicalUnit: "%"},
	{Name: "Plaquetas", Min: 100.0, Max: 500.0, TypicalUnit: "×10^9/L"},
	{Name: "VPM", Min: 5.0, Max: 15.0, TypicalUnit: "fL"},
}

func cbcRange(name string) (valueRange, bool) {
	for _, r := range cbcValueRanges {
		if r.Name == name {
			return r, true
		}
	}
	return valueRange{}, false
}

func (r valueRange) contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}
