package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/client"
)

const (
	defaultServerURL = "http://localhost:8080"
	syncTimeout      = 15 * time.Second
)

// Утилита синхронизации локального кеша сайта: проверяет версию контента
// на сервере и обновляет локальную копию только при реальном изменении.
// Выводит выдачу в stdout в JSON, чтобы ее мог подхватить рендер.
func main() {
	serverURLFlag := flag.String("server-url", defaultServerURL, "URL сервера")
	cacheDirFlag := flag.String("cache-dir", "", "Каталог локального кеша (по умолчанию каталог кеша пользователя)")
	clearFlag := flag.Bool("clear", false, "Очистить локальный кеш и выйти")
	flag.Parse()

	if envURL := os.Getenv("CRACKED_SERVER_URL"); envURL != "" && *serverURLFlag == defaultServerURL {
		*serverURLFlag = envURL
	}

	cache, err := client.NewFileCache(*cacheDirFlag)
	if err != nil {
		log.Fatalf("[Client] Ошибка инициализации кеша: %v", err)
	}

	if *clearFlag {
		cache.Clear()
		log.Println("[Client] Локальный кеш очищен")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	reconciler := client.NewReconciler(client.NewHTTPAPI(*serverURLFlag), cache)
	result, err := reconciler.Sync(ctx)
	if err != nil {
		log.Fatalf("[Client] Ошибка синхронизации: %v", err)
	}

	meta := cache.LoadMeta()
	log.Printf("[Client] Источник: %s, версия: %s, попаданий: %d, промахов: %d",
		result.Source, result.VersionID, meta.Hits, meta.Misses)

	if err = json.NewEncoder(os.Stdout).Encode(result.Data); err != nil {
		log.Fatalf("[Client] Ошибка вывода выдачи: %v", err)
	}
}
