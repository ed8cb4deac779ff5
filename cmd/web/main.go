package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"

	"moso_shop/internal/catalog"
	"moso_shop/internal/models"
	"moso_shop/internal/notify"
	"moso_shop/internal/payment"
	"moso_shop/internal/store"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	session  *scs.SessionManager
	store    *store.Store
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	addr := flag.String("addr", ":4000", "HTTP network address")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	products := loadCatalog(infoLog, errorLog)

	tokenizer := payment.NewClient(
		envOr("PAYMENT_API_URL", "https://api.mosopay.vn"),
		envOr("PAYMENT_API_KEY", "pk_live_5f2a9c1d8e3b"),
	)
	mailer := notify.NewClient(
		envOr("EMAIL_API_URL", "https://api.thugui.vn"),
		envOr("EMAIL_API_KEY", "key_live_77d0c4a1"),
	)

	st := store.New(store.Options{
		Catalog:         products,
		Tokenizer:       tokenizer,
		Mailer:          mailer,
		ErrorLog:        errorLog,
		ProcessingDelay: 1200 * time.Millisecond,
	})
	defer st.Close()

	session := scs.New()
	session.Lifetime = 24 * time.Hour

	app := &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		session:  session,
		store:    st,
	}

	srv := &http.Server{
		Addr:     *addr,
		ErrorLog: errorLog,
		Handler:  app.routes(),
	}

	infoLog.Printf("Starting MoSo shop on %s", *addr)
	errorLog.Fatal(srv.ListenAndServe())
}

// loadCatalog reads the products collection when MONGO_URL is set and
// falls back to the embedded seed otherwise (and on any Mongo failure).
func loadCatalog(infoLog, errorLog *log.Logger) []models.Product {
	url := os.Getenv("MONGO_URL")
	if url == "" {
		return catalog.Seed()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	src, err := catalog.ConnectMongo(ctx, url)
	if err != nil {
		errorLog.Println("mongo connect failed, using embedded catalogue:", err)
		return catalog.Seed()
	}
	products, err := src.GetAllProducts(ctx)
	if err != nil || len(products) == 0 {
		errorLog.Println("mongo catalogue empty or unreadable, using embedded catalogue:", err)
		return catalog.Seed()
	}
	infoLog.Printf("Loaded %d products from Mongo", len(products))
	return products
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
