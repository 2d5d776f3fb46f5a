package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Nzyazin/fincalc/internal/core/calculator"
	"github.com/Nzyazin/fincalc/internal/core/logger"
	"github.com/Nzyazin/fincalc/internal/core/models"
	"github.com/Nzyazin/fincalc/internal/core/report"
	"github.com/Nzyazin/fincalc/internal/core/usecase"
)

const (
	defaultMaxBodyBytes = 1 << 20
	reportFormat        = "svg"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// outcome is what every scenario hands back to the HTTP layer. The report is
// laid out only when asked for.
type outcome struct {
	payload []byte
	report  func() report.Document
	cached  bool
}

type scenarioFunc func(ctx context.Context, body []byte) (outcome, error)

type CalculatorHandler struct {
	usecase      *usecase.CalculatorUsecase
	log          logger.Logger
	maxBodyBytes int64
	scenarios    map[models.Scenario]scenarioFunc
}

// NewCalculatorHandler wires every scenario to its calculation. A
// non-positive maxBodyBytes falls back to 1 MiB.
func NewCalculatorHandler(uc *usecase.CalculatorUsecase, log logger.Logger, maxBodyBytes int64) *CalculatorHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	return &CalculatorHandler{
		usecase:      uc,
		log:          log,
		maxBodyBytes: maxBodyBytes,
		scenarios: map[models.Scenario]scenarioFunc{
			models.ScenarioHourlyIncome:  bind(uc, models.ScenarioHourlyIncome, calculator.HourlyIncome, calculator.HourlyIncomeReport),
			models.ScenarioTimeValue:     bind(uc, models.ScenarioTimeValue, calculator.TimeValue, calculator.TimeValueReport),
			models.ScenarioInvestment:    bind(uc, models.ScenarioInvestment, calculator.Investment, calculator.InvestmentReport),
			models.ScenarioCredit:        bind(uc, models.ScenarioCredit, calculator.Credit, calculator.CreditReport),
			models.ScenarioRetirement:    bind(uc, models.ScenarioRetirement, calculator.Retirement, calculator.RetirementReport),
			models.ScenarioDebtPayoff:    bind(uc, models.ScenarioDebtPayoff, calculator.DebtPayoff, calculator.DebtPayoffReport),
			models.ScenarioEmergencyFund: bind(uc, models.ScenarioEmergencyFund, calculator.EmergencyFund, calculator.EmergencyFundReport),
			models.ScenarioTax:           bind(uc, models.ScenarioTax, calculator.Tax, calculator.TaxReport),
			models.ScenarioBuyRent:       bind(uc, models.ScenarioBuyRent, calculator.BuyRent, calculator.BuyRentReport),
		},
	}
}

func bind[Req any, Resp any](uc *usecase.CalculatorUsecase, scenario models.Scenario, calc func(Req) Resp, build func(Req, Resp) report.Document) scenarioFunc {
	required := requiredFields[Req]()

	return func(ctx context.Context, body []byte) (outcome, error) {
		req, err := decodeRequest[Req](body, required)
		if err != nil {
			return outcome{}, err
		}

		res, err := usecase.Execute(ctx, uc, scenario, req, calc)
		if err != nil {
			return outcome{}, err
		}

		return outcome{
			payload: res.Payload,
			report:  func() report.Document { return build(req, res.Response) },
			cached:  res.Cached,
		}, nil
	}
}

func (h *CalculatorHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/calculate/{scenario}", h.Calculate).Methods(http.MethodPost)
	router.HandleFunc("/calculate/{scenario}/report", h.Report).Methods(http.MethodPost)
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
}

// Calculate answers with the scenario's JSON response.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	scenario, out, ok := h.run(w, r)
	if !ok {
		return
	}

	h.log.Info("Calculation served",
		logger.StringField("scenario", string(scenario)),
		logger.BoolField("cached", out.cached),
	)
	respondWithPayload(w, http.StatusOK, out.payload)
}

// Report answers with a downloadable SVG document holding the scenario's
// charts and a summary of its figures. SVG is the only format rendered.
func (h *CalculatorHandler) Report(w http.ResponseWriter, r *http.Request) {
	scenario := models.Scenario(mux.Vars(r)["scenario"])
	if _, known := h.scenarios[scenario]; known {
		if format := r.URL.Query().Get("format"); format != "" && !strings.EqualFold(format, reportFormat) {
			h.handleCalculationError(w, scenario, &requestError{message: fmt.Sprintf("unsupported report format: %s", format)})
			return
		}
	}

	scenario, out, ok := h.run(w, r)
	if !ok {
		return
	}

	h.log.Info("Report served",
		logger.StringField("scenario", string(scenario)),
		logger.BoolField("cached", out.cached),
	)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", scenario.ReportFileName()))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, out.report().Render())
}

func (h *CalculatorHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *CalculatorHandler) run(w http.ResponseWriter, r *http.Request) (models.Scenario, outcome, bool) {
	scenario := models.Scenario(mux.Vars(r)["scenario"])

	calculate, ok := h.scenarios[scenario]
	if !ok {
		h.handleCalculationError(w, scenario, fmt.Errorf("%w: %s", usecase.ErrUnknownScenario, scenario))
		return scenario, outcome{}, false
	}

	body, err := h.readBody(w, r)
	if err != nil {
		h.handleCalculationError(w, scenario, err)
		return scenario, outcome{}, false
	}

	out, err := calculate(r.Context(), body)
	if err != nil {
		h.handleCalculationError(w, scenario, err)
		return scenario, outcome{}, false
	}

	return scenario, out, true
}

func (h *CalculatorHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return body, nil
}

func (h *CalculatorHandler) handleCalculationError(w http.ResponseWriter, scenario models.Scenario, err error) {
	var reqErr *requestError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.Is(err, usecase.ErrUnknownScenario):
		h.log.Warn("Unknown scenario", logger.StringField("scenario", string(scenario)))
		respondWithError(w, http.StatusNotFound, "Unknown scenario")
	case errors.As(err, &tooLarge):
		h.log.Warn("Request body too large",
			logger.StringField("scenario", string(scenario)),
			logger.Int64Field("limit", tooLarge.Limit),
		)
		respondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.As(err, &reqErr):
		h.log.Warn("Invalid calculation request",
			logger.StringField("scenario", string(scenario)),
			logger.StringField("reason", reqErr.message),
		)
		respondWithError(w, http.StatusBadRequest, reqErr.message)
	case errors.Is(err, usecase.ErrNonFiniteResult):
		h.log.Error("Calculation produced no finite result",
			logger.StringField("scenario", string(scenario)),
			logger.ErrorField("error", err),
		)
		respondWithError(w, http.StatusInternalServerError, "Calculation produced a non-finite result")
	default:
		h.log.Error("Failed to process calculation",
			logger.StringField("scenario", string(scenario)),
			logger.ErrorField("error", err),
		)
		respondWithError(w, http.StatusInternalServerError, "Failed to process calculation")
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, v interface{}) {
	response, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal Server Error"}`)) // Fallback response
		return
	}
	respondWithPayload(w, code, response)
}

func respondWithPayload(w http.ResponseWriter, code int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(payload)
}
