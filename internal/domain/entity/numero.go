package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefijos de numeración de documentos.
const (
	PrefijoContrato = "C"
	PrefijoFactura  = "F"
	PrefijoRemito   = "R"
)

// NuevoNumero genera un identificador de documento con el formato <prefijo>-<año>-<8 hex>,
// por ejemplo C-2026-3F9A1C2B.
func NuevoNumero(prefijo string, t time.Time) string {
	sufijo := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%d-%s", prefijo, t.Year(), sufijo)
}
