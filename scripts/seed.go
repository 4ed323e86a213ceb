// Seeds the data directory with a starter user list and empty
// collections. Usage: go run ./scripts [dir]
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type user struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type userDocument struct {
	Users []user `json:"users"`
}

func main() {
	dir := "./data"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "mkdir:", err)
		os.Exit(1)
	}

	seed := map[string]any{
		"users.json": userDocument{Users: []user{
			{Name: "Carla", Role: "Manager"},
			{Name: "Ana", Role: "Employee"},
			{Name: "Pedro", Role: "Employee"},
		}},
		"checklists.json": []any{},
		"feedbacks.json":  []any{},
	}

	for name, v := range seed {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			fmt.Println("skip (exists):", path)
			continue
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "encode:", err)
			os.Exit(1)
		}
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "write:", err)
			os.Exit(1)
		}
		fmt.Println("wrote:", path)
	}
}
