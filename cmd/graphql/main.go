// Standalone GraphQL server — run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	graphqlApi "github.com/programmer-santosh-main/thapaelectronics/api/graphql"
	"github.com/programmer-santosh-main/thapaelectronics/config"
	"github.com/programmer-santosh-main/thapaelectronics/graphqlserver"
	catalogService "github.com/programmer-santosh-main/thapaelectronics/service/catalog"
)

func main() {
	_ = godotenv.Load()
	config.LoadAppConfig()

	e := echo.New()
	schema, err := graphqlserver.NewSchema(catalogService.GetClient())
	if err != nil {
		log.Fatal("graphql schema:", err)
	}
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, schema)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("Storefront GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
