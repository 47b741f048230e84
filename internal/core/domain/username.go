// internal/core/domain/username.go
package domain

import "strings"

// minVariationLen descarta candidatos demasiado cortos para ser handles reales.
const minVariationLen = 3

// GenerateUsernameVariations deriva candidatos de username a partir de un
// nombre completo. Es una función pura y determinista: misma entrada, misma
// salida, siempre en el mismo orden. Un nombre de un solo token retorna ese
// token en minúsculas sin separadores.
func GenerateUsernameVariations(fullName string) []string {
	parts := strings.Fields(strings.ToLower(fullName))
	if len(parts) == 0 {
		return []string{}
	}
	if len(parts) < 2 {
		return []string{strings.ReplaceAll(strings.ToLower(fullName), " ", "")}
	}

	first := parts[0]
	last := parts[len(parts)-1]
	middle := ""
	if len(parts) > 2 {
		middle = parts[1]
	}
	firstInitial := initial(first)
	lastInitial := initial(last)

	variations := []string{
		first + last,               // amandadriskell
		first + "_" + last,         // amanda_driskell
		first + "." + last,         // amanda.driskell
		first + "-" + last,         // amanda-driskell
		last + first,               // driskellamanda
		firstInitial + last,        // adriskell
		first + lastInitial,        // amandad
		first + "_" + lastInitial,  // amanda_d
		last + "_" + first,         // driskell_amanda
		first + last + "1",         // amandadriskell1
		first + last + "123",       // amandadriskell123
		"real" + first + last,      // realamandadriskell
		"the" + first + last,       // theamandadriskell
		first + "official",         // amandaofficial
	}

	if middle != "" {
		variations = append(variations,
			first+initial(middle)+last,         // amandajdriskell
			first+"_"+initial(middle)+"_"+last, // amanda_j_driskell
		)
	}

	// Filtrado por longitud mínima y dedupe preservando el orden de primera
	// aparición
	seen := make(map[string]struct{}, len(variations))
	out := make([]string, 0, len(variations))
	for _, v := range variations {
		if len(v) < minVariationLen {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// initial retorna el primer carácter del token, respetando runas multibyte.
func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
