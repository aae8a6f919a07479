package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/reign-ny/membership-approval/internal/codec"
)

// NumeralResponse представляет пару римской и арабской записи числа
type NumeralResponse struct {
	Arabic int    `json:"arabic"`
	Roman  string `json:"roman"`
}

// ToRoman обрабатывает GET /numerals/roman/{n}
func ToRoman(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "n must be an integer")
		return
	}

	roman, err := codec.ArabicToRoman(n)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NumeralResponse{Arabic: n, Roman: roman})
}

// ToArabic обрабатывает GET /numerals/arabic/{numeral}
func ToArabic(w http.ResponseWriter, r *http.Request) {
	numeral := chi.URLParam(r, "numeral")

	n, err := codec.RomanToArabic(numeral)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	// Возвращаем каноническую запись, если она существует ("xiv" -> "XIV", "IIII" -> "IV")
	if canonical, err := codec.ArabicToRoman(n); err == nil {
		numeral = canonical
	}

	RespondWithJSON(w, r, http.StatusOK, NumeralResponse{Arabic: n, Roman: numeral})
}
