package acts

import "fmt"

type Type string

const (
	TypePee  Type = "PEE"
	TypePoo  Type = "POO"
	TypeFood Type = "FOOD"

	TypeWater    Type = "WATER"
	TypeExercise Type = "EXERCISE"

	TypeAccidentPee   Type = "ACCIDENT_PEE"
	TypeAccidentPoo   Type = "ACCIDENT_POO"
	TypeAccidentVomit Type = "ACCIDENT_VOMIT"
)

// Category son los atributos fijos de cada tipo: código de almacenamiento, label y colores.
type Category struct {
	Type     Type
	Code     int16
	Label    string
	Color    string
	Contrast string
}

// Orden de la tabla = orden de los botones del modal y del panel "desde".
var categories = []Category{
	{Type: TypePee, Code: 1, Label: "Pee", Color: "yellow", Contrast: "black"},
	{Type: TypePoo, Code: 2, Label: "Poop", Color: "#663300", Contrast: "white"},
	{Type: TypeFood, Code: 10, Label: "Food", Color: "#e6005c", Contrast: "white"},
	{Type: TypeWater, Code: 11, Label: "Water", Color: "skyblue", Contrast: "black"},
	{Type: TypeExercise, Code: 20, Label: "Exercise", Color: "#006600", Contrast: "white"},
	{Type: TypeAccidentPee, Code: 100, Label: "Accident (Pee)", Color: "#e53e3e", Contrast: "white"},
	{Type: TypeAccidentPoo, Code: 101, Label: "Accident (Poop)", Color: "#e53e3e", Contrast: "white"},
	{Type: TypeAccidentVomit, Code: 102, Label: "Accident (Vomit)", Color: "yellowgreen", Contrast: "black"},
}

// Categories devuelve una copia de la tabla completa.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func (t Type) Category() (Category, bool) {
	for _, c := range categories {
		if c.Type == t {
			return c, true
		}
	}
	return Category{}, false
}

func (t Type) Valid() bool {
	_, ok := t.Category()
	return ok
}

// Label devuelve el texto visible; para tipos desconocidos, el nombre crudo.
func (t Type) Label() string {
	if c, ok := t.Category(); ok {
		return c.Label
	}
	return string(t)
}

func (t Type) Code() int16 {
	c, _ := t.Category()
	return c.Code
}

func TypeFromCode(code int16) (Type, error) {
	for _, c := range categories {
		if c.Code == code {
			return c.Type, nil
		}
	}
	return "", fmt.Errorf("unknown act type code %d", code)
}
