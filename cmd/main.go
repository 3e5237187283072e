package main

import (
    "github.com/filiperamosmorais-source/MealOps/config"
    "github.com/filiperamosmorais-source/MealOps/routes"
    "github.com/filiperamosmorais-source/MealOps/utils"
)

func main() {
    db := config.InitDB()
    utils.InitMailer()
    r := routes.SetupRouter(db)
    r.Run(":8080")
}
