package main

import "tasktracker/internal/app"

// @title           Task Tracker API
// @version         1.0
// @description     REST-сервис управления задачами: регистрация, задачи, комментарии, поиск.

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	app.Run()
}
