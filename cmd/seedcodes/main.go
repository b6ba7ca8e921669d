// seedcodes genera un script SQL con códigos de activación de trial de un
// solo uso, listos para repartir.
//
// Uso: go run ./cmd/seedcodes [cantidad]
// Por defecto genera 20 códigos.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_trial_codes.sql
package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Alfabeto sin 0/O ni 1/I para que los códigos se puedan dictar por teléfono.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

func main() {
	count := 20
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Cantidad inválida: %s\n", os.Args[1])
			os.Exit(1)
		}
		count = n
	}

	codes := make([]string, 0, count)
	seen := make(map[string]bool, count)
	for len(codes) < count {
		code, err := randomCode()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generar código: %v\n", err)
			os.Exit(1)
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_trial_codes.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Códigos de activación de trial (un solo uso)\n")
	out.WriteString("-- Generado con cmd/seedcodes\n\n")

	out.WriteString("INSERT INTO trial_codes (id, code) VALUES\n")
	for i, code := range codes {
		sep := ","
		if i == len(codes)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s')%s\n", uuid.New().String(), escapeSQL(code), sep)
	}
	out.WriteString("ON CONFLICT (code) DO NOTHING;\n")

	fmt.Printf("Generado %s: %d códigos\n", outPath, len(codes))
}

func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
