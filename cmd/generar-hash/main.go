// Utilidad para generar el hash bcrypt de una contraseña.
// Sirve para sembrar el usuario admin a mano:
//
//	go run ./cmd/generar-hash 'MiContrasenaSegura'
//
// El hash resultante se inserta directo en la columna contrasena de usuarios.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "uso: generar-hash <contraseña>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error al generar hash:", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}
