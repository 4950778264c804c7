package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/redis/go-redis/v9"

	"mandi-backend/internal/models"
)

// textTranslator is the slice of GeminiService the translation layer needs.
type textTranslator interface {
	Translate(ctx context.Context, req models.TranslationRequest) (string, error)
}

// TranslationService wraps the Gemini client with a Redis-backed cache and
// language detection. A cache failure never fails a translation; the call
// falls through to the AI service.
type TranslationService struct {
	translator textTranslator
	redis      *redis.Client
	cacheTTL   time.Duration
}

func NewTranslationService(translator textTranslator, redisClient *redis.Client, cacheTTLHours int) *TranslationService {
	return &TranslationService{
		translator: translator,
		redis:      redisClient,
		cacheTTL:   time.Duration(cacheTTLHours) * time.Hour,
	}
}

// Translate returns the text in the target language, consulting the cache
// first. When the source language is unset it is detected heuristically.
func (s *TranslationService) Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
	if strings.TrimSpace(req.SourceText) == "" {
		return nil, &InvalidRequestError{Message: "source text is empty"}
	}
	if req.SourceLanguage == "" {
		req.SourceLanguage = DetectLanguage(req.SourceText)
	}

	resp := &models.TranslationResponse{
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	}

	if req.SourceLanguage == req.TargetLanguage {
		resp.TranslatedText = req.SourceText
		return resp, nil
	}

	key := cacheKey(req.SourceText, req.SourceLanguage, req.TargetLanguage)
	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Result()
		if err == nil {
			resp.TranslatedText = cached
			resp.Cached = true
			return resp, nil
		}
		if err != redis.Nil {
			log.Printf("translation cache read failed: %v", err)
		}
	}

	start := time.Now()
	translated, err := s.translator.Translate(ctx, req)
	if err != nil {
		return nil, err
	}
	resp.TranslatedText = translated
	resp.LatencyMs = time.Since(start).Milliseconds()

	if s.redis != nil {
		if err := s.redis.Set(ctx, key, translated, s.cacheTTL).Err(); err != nil {
			log.Printf("translation cache write failed: %v", err)
		}
	}

	return resp, nil
}

// TranslateBatch translates each text to the target language in order.
func (s *TranslationService) TranslateBatch(ctx context.Context, texts []string, target models.Language) ([]string, error) {
	if len(texts) == 0 {
		return nil, &InvalidRequestError{Message: "no texts to translate"}
	}

	out := make([]string, len(texts))
	for i, text := range texts {
		resp, err := s.Translate(ctx, models.TranslationRequest{
			SourceText:     text,
			TargetLanguage: target,
		})
		if err != nil {
			return nil, err
		}
		out[i] = resp.TranslatedText
	}
	return out, nil
}

// ClearCache drops all cached translations.
func (s *TranslationService) ClearCache(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}

	iter := s.redis.Scan(ctx, 0, cacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.redis.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// DetectLanguage is a simple script heuristic: text with Latin letters is
// treated as English, anything else defaults to Marathi. Hindi and Marathi
// share Devanagari, so without the AI the default favors the mandi's home
// language.
func DetectLanguage(text string) models.Language {
	for _, r := range text {
		if r < 128 && unicode.IsLetter(r) {
			return models.LanguageEnglish
		}
	}
	return models.LanguageMarathi
}

const cacheKeyPrefix = "translation:"

func cacheKey(text string, source, target models.Language) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", text, source, target)))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
