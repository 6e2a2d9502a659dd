package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MainigB/optcgjourney/internal/backup"
	"github.com/MainigB/optcgjourney/internal/decks"
	"github.com/MainigB/optcgjourney/internal/stats"
	"github.com/MainigB/optcgjourney/internal/tracker"
	"github.com/charmbracelet/log"
)

// respondJSON is a helper to write a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := s.Store.LoadAll(r.Context())
		respondJSON(w, http.StatusOK, list)
	}
}

func (s *Server) CreateTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params tracker.TournamentParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			log.Error("Failed to decode tournament params", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(params.Deck) == "" {
			http.Error(w, "Deck is required", http.StatusBadRequest)
			return
		}

		t := s.Store.Create(r.Context(), params)
		log.Info("Created tournament", "id", t.ID, "deck", t.Deck)
		respondJSON(w, http.StatusCreated, t)
	}
}

func (s *Server) GetTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := s.Store.Get(r.Context(), r.PathValue("id"))
		if t == nil {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func (s *Server) UpdateTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var details tracker.DetailsUpdate
		if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
			log.Error("Failed to decode details update", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		t := s.Store.UpdateDetails(r.Context(), r.PathValue("id"), details)
		if t == nil {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func (s *Server) DeleteTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !s.Store.Delete(r.Context(), id) {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		log.Info("Deleted tournament", "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) AppendRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input tracker.RoundInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			log.Error("Failed to decode round input", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		t := s.Store.AppendRound(r.Context(), r.PathValue("id"), input)
		if t == nil {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		// AppendRound returns the tournament unchanged when it is
		// finalized; no round was added in that case.
		if t.Finalized {
			http.Error(w, "Tournament is finalized", http.StatusConflict)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func (s *Server) RemoveRoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := s.Store.RemoveRound(r.Context(), r.PathValue("id"), r.PathValue("roundID"))
		if t == nil {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func (s *Server) FinalizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := s.Store.SetFinalized(r.Context(), r.PathValue("id"), true)
		if t == nil {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func (s *Server) ReopenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := s.Store.SetFinalized(r.Context(), r.PathValue("id"), false)
		if t == nil {
			http.Error(w, "Tournament not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, t)
	}
}

func (s *Server) DeckAggregatesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := s.Store.LoadAll(r.Context())
		respondJSON(w, http.StatusOK, stats.AggregateByDeck(list))
	}
}

func (s *Server) DeckStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deck := r.URL.Query().Get("deck")
		if strings.TrimSpace(deck) == "" {
			http.Error(w, "deck query parameter is required", http.StatusBadRequest)
			return
		}
		list := s.Store.LoadAll(r.Context())
		respondJSON(w, http.StatusOK, stats.StatsForDeck(list, deck))
	}
}

func (s *Server) DeckMatchupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deck := r.URL.Query().Get("deck")
		if strings.TrimSpace(deck) == "" {
			http.Error(w, "deck query parameter is required", http.StatusBadRequest)
			return
		}
		list := s.Store.LoadAll(r.Context())
		respondJSON(w, http.StatusOK, stats.MatchupsForDeck(list, deck))
	}
}

func (s *Server) DeckSplitsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deck := r.URL.Query().Get("deck")
		if strings.TrimSpace(deck) == "" {
			http.Error(w, "deck query parameter is required", http.StatusBadRequest)
			return
		}
		list := s.Store.LoadAll(r.Context())
		respondJSON(w, http.StatusOK, stats.SplitsForDeck(list, deck))
	}
}

func (s *Server) DeckMatchupSplitsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deck := r.URL.Query().Get("deck")
		opponent := r.URL.Query().Get("opponent")
		if strings.TrimSpace(deck) == "" || strings.TrimSpace(opponent) == "" {
			http.Error(w, "deck and opponent query parameters are required", http.StatusBadRequest)
			return
		}
		list := s.Store.LoadAll(r.Context())
		respondJSON(w, http.StatusOK, stats.MatchupSplitsForDeck(list, deck, opponent))
	}
}

func (s *Server) SuggestDecksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		limit := 10
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				http.Error(w, "Invalid limit", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		list := s.Store.LoadAll(r.Context())
		suggestions := decks.Suggest(list, query, limit)
		if suggestions == nil {
			suggestions = []string{}
		}
		respondJSON(w, http.StatusOK, suggestions)
	}
}

func (s *Server) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := s.Store.LoadAll(r.Context())
		data, err := backup.Export(list)
		if err != nil {
			log.Error("Failed to export snapshot", "error", err)
			http.Error(w, "Failed to export snapshot", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/x-msgpack")
		w.Header().Set("Content-Disposition", `attachment; filename="optcgjourney.snapshot"`)
		if _, err := w.Write(data); err != nil {
			log.Error("Failed to write snapshot response", "error", err)
		}
	}
}

func (s *Server) ImportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}

		list, err := backup.Import(data)
		if err != nil {
			log.Error("Failed to parse snapshot", "error", err)
			http.Error(w, "Invalid snapshot", http.StatusBadRequest)
			return
		}

		s.Store.SaveAll(r.Context(), list)
		log.Info("Imported snapshot", "tournaments", len(list))
		respondJSON(w, http.StatusOK, map[string]int{"imported": len(list)})
	}
}
