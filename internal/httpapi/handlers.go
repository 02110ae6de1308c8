package httpapi

import (
	"net/http"

	"sheetfmt/internal/domain"
)

func (s *Server) handleInfos(w http.ResponseWriter, r *http.Request) error {
	return s.writeJSON(w, r, s.svc.Infos())
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) error {
	name, err := pathName(r)
	if err != nil {
		return err
	}
	info, err := s.svc.Info(name)
	if err != nil {
		return err
	}
	return s.writeJSON(w, r, info)
}

// handleEdit expects the selector text as a JSON string body.
func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) error {
	var text string
	if err := decodeBody(r, &text); err != nil {
		return err
	}
	return s.writeJSON(w, r, s.svc.Edit(s.formatterContext(r), text))
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) error {
	var requests []domain.FormatRequest
	if err := decodeBody(r, &requests); err != nil {
		return err
	}
	if requests == nil {
		requests = []domain.FormatRequest{}
	}
	return s.writeJSON(w, r, s.svc.Format(s.formatterContext(r), requests))
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) error {
	menu, err := s.svc.Menu(s.formatterContext(r))
	if err != nil {
		return err
	}
	return s.writeJSON(w, r, menu)
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) error {
	name, err := pathName(r)
	if err != nil {
		return err
	}
	samples, err := s.svc.Samples(s.formatterContext(r), name)
	if err != nil {
		return err
	}
	return s.writeJSON(w, r, samples)
}

func (s *Server) handleTextComponents(w http.ResponseWriter, r *http.Request) error {
	selector, err := querySelector(r)
	if err != nil {
		return err
	}
	components, err := s.svc.TextComponents(s.formatterContext(r), selector)
	if err != nil {
		return err
	}
	return s.writeJSON(w, r, components)
}

// handleNextTextComponent writes null when nothing may follow.
func (s *Server) handleNextTextComponent(w http.ResponseWriter, r *http.Request) error {
	selector, err := querySelector(r)
	if err != nil {
		return err
	}
	next, err := s.svc.NextTextComponent(selector)
	if err != nil {
		return err
	}
	return s.writeJSON(w, r, next)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.writeJSON(w, r, map[string]string{"status": "ok"}); err != nil {
		s.writeError(w, r, err)
	}
}

func pathName(r *http.Request) (domain.FormatterName, error) {
	name, err := domain.ParseFormatterName(r.PathValue("name"))
	if err != nil {
		return "", domain.Errorf("httpapi.path", domain.KindInvalid, "%v", err)
	}
	return name, nil
}

// querySelector combines the {name} path segment with the text query.
func querySelector(r *http.Request) (domain.Selector, error) {
	name, err := pathName(r)
	if err != nil {
		return domain.Selector{}, err
	}
	return domain.NewSelector(name, r.URL.Query().Get("text")), nil
}
