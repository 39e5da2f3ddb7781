package httpapi

import "net/http"

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCountries")
	defer span.End()

	countries, err := h.countryService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list countries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]countryDTO, 0, len(countries))
	for _, c := range countries {
		items = append(items, countryToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCountry")
	defer span.End()

	id, err := pathID(r, "countryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	c, err := h.countryService.Get(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get country failed", "country_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countryToDTO(c))
}

func (h *Handler) GetCountryProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCountryProfile")
	defer span.End()

	id, err := pathID(r, "countryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	fromYear, err := queryOptionalInt(r, "from_year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	toYear, err := queryOptionalInt(r, "to_year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.countryService.GetProfile(ctx, id, fromYear, toYear)
	if err != nil {
		h.logger.WarnContext(ctx, "get country profile failed", "country_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, countryProfileToDTO(profile))
}

func (h *Handler) ListCountryMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCountryMatches")
	defer span.End()

	id, err := pathID(r, "countryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.countryService.ListMatches(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "list country matches failed", "country_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(matches))
}
