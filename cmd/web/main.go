package main

import "photobook_backend/internal/app"

func main() {
	app.Run()
}
