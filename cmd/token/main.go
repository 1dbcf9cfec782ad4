// Comando token emite un JWT firmado con JWT_SECRET para pruebas locales.
//
//	go run ./cmd/token -user 00000000-0000-0000-0000-000000000001 -role admin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/jwt"
)

func main() {
	user := flag.String("user", "", "user_id que quedará en los movimientos")
	role := flag.String("role", "operator", "admin | operator")
	exp := flag.Int("exp", 0, "minutos de validez (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "falta -user")
		os.Exit(2)
	}
	// el token no depende del backend de registros
	os.Setenv("STORE_DRIVER", config.DriverMemory)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	minutes := cfg.JWT.Expiration
	if *exp > 0 {
		minutes = *exp
	}
	tok, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, minutes)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generar token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
