package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"recreo/clients"
	"recreo/handlers"
	"recreo/services"
	"recreo/storage"
)

func main() {
	// Load environment variables from a .env file.
	// This is typically used in a development environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}

	log.Printf("✅ Recreo starting...")

	sessions := newSessionRepository()
	geocoder := services.NewGeocodingService(clients.NewNominatimClient(os.Getenv("NOMINATIM_BASE_URL")))
	activities := services.NewActivityService(newYelpClient())

	// Nil AI client: OPENAI_API_KEY is read on each description request,
	// so the key can be rotated without a restart.
	describer := services.NewDescriptionService(nil)

	pages := handlers.NewPageHandler(sessions, geocoder, activities, describer)
	location := handlers.NewLocationHandler(sessions, geocoder)
	cards := handlers.NewShareCardHandler(sessions, activities)

	// Routes
	http.HandleFunc("/", pages.HandleIndex)
	http.HandleFunc("/location/", pages.HandleLocationPage)
	http.HandleFunc("/activities/", pages.HandleActivities)
	http.HandleFunc("/activity/", pages.HandleActivityDetail)
	http.HandleFunc("/api/location/", location.HandleSaveLocation)
	http.HandleFunc("/save_text_location/", location.HandleSaveTextLocation)
	http.HandleFunc("/api/share-card/", cards.HandleShareCard)
	http.HandleFunc("/api/health", handlers.HandleHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🌍 Server running on http://:%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

// newSessionRepository picks DynamoDB when a sessions table is configured,
// in-memory storage otherwise.
func newSessionRepository() storage.SessionRepository {
	tableName := os.Getenv("SESSIONS_TABLE_NAME")
	if tableName == "" {
		log.Printf("💾 Using in-memory session storage (set SESSIONS_TABLE_NAME for DynamoDB)")
		repo := storage.NewMemorySessionRepository()
		go repo.CleanupLoop()
		return repo
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("❌ Failed to load AWS config: %v", err)
	}

	log.Printf("💾 Using DynamoDB session storage: table=%s region=%s", tableName, region)
	return storage.NewSessionDynamoDBRepository(dynamodb.NewFromConfig(cfg), tableName)
}

// newYelpClient prefers a Fusion API key, falling back to the legacy
// client-credential token exchange when only an app id/secret pair is set.
func newYelpClient() *clients.YelpClient {
	baseURL := os.Getenv("YELP_BASE_URL")

	if apiKey := os.Getenv("YELP_API_KEY"); apiKey != "" {
		return clients.NewYelpClient(apiKey, baseURL)
	}

	clientID := os.Getenv("YELP_CLIENT_ID")
	clientSecret := os.Getenv("YELP_CLIENT_SECRET")
	if clientID != "" && clientSecret != "" {
		log.Printf("🔑 Using Yelp client-credential token exchange")
		return clients.NewYelpClientWithOAuth(clientID, clientSecret, baseURL)
	}

	log.Printf("⚠️  No Yelp credentials set - activity searches will come back empty")
	return clients.NewYelpClient("", baseURL)
}
