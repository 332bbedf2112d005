// Package textenc decodifica texto histórico escrito con codificaciones inconsistentes.
package textenc

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decoder intenta convertir raw a texto; ok=false si raw no es válido en esa codificación.
type Decoder struct {
	Name   string
	Decode func(raw []byte) (text string, ok bool)
}

// Chain orden de intentos usado por Decode. El último nunca falla.
var Chain = []Decoder{
	{Name: "utf-8", Decode: decodeUTF8},
	{Name: "windows-1252", Decode: decodeWindows1252},
	{Name: "utf-8-replace", Decode: decodeReplace},
}

// Decode devuelve el texto de raw usando el primer decodificador de Chain que lo acepte.
func Decode(raw []byte) string {
	text, _ := DecodeWith(raw)
	return text
}

// DecodeWith igual que Decode, devolviendo además el nombre de la codificación aplicada.
func DecodeWith(raw []byte) (string, string) {
	for _, d := range Chain {
		if text, ok := d.Decode(raw); ok {
			return text, d.Name
		}
	}
	text, _ := decodeReplace(raw)
	return text, "utf-8-replace"
}

func decodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// Bytes que Windows-1252 deja sin asignar; charmap los mapea a controles C1,
// aquí se tratan como error para no aceptar binario arbitrario.
func undefinedInWindows1252(b byte) bool {
	switch b {
	case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
		return true
	}
	return false
}

func decodeWindows1252(raw []byte) (string, bool) {
	for _, b := range raw {
		if undefinedInWindows1252(b) {
			return "", false
		}
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// decodeReplace sustituye cada byte inválido por U+FFFD.
func decodeReplace(raw []byte) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(raw))
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(raw[:size])
		}
		raw = raw[size:]
	}
	return sb.String(), true
}
