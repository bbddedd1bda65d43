package main

import "lintar_backend/internal/app"

func main() {
	app.Run()
}
