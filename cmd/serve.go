package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/pianoratio/constants"
	"github.com/jsphweid/pianoratio/keyboard"
	"github.com/jsphweid/pianoratio/logs"
	"github.com/jsphweid/pianoratio/model"
	"github.com/jsphweid/pianoratio/pitch"
	"github.com/jsphweid/pianoratio/press"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	display      *press.Display
	pressLimiter *rate.Limiter
	layoutConfig keyboard.Config
	logger       *slog.Logger
)

func init() {
	LoadServeState(keyConfig(constants.GetKeyWidth()), constants.GetPressRate(), logs.NewLogger(os.Stderr, false))

	serveCmd.Flags().Int("port", constants.GetPort(), "port to listen on")
	serveCmd.Flags().Int("press-rate", constants.GetPressRate(), "key presses accepted per second")
	serveCmd.Flags().Int("width", constants.GetKeyWidth(), "white key width in pixels")
	serveCmd.Flags().Bool("debug", false, "debug logging")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the keyboard layout and key ratios over http",
	Long:  `Serves the keyboard layout and key ratios over http so a page can draw the keys and report presses.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		pressRate, _ := cmd.Flags().GetInt("press-rate")
		width, _ := cmd.Flags().GetInt("width")
		debug, _ := cmd.Flags().GetBool("debug")

		LoadServeState(keyConfig(width), pressRate, logs.NewLogger(os.Stderr, debug))
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return serve(ctx, fmt.Sprintf(":%d", port))
	},
}

func keyConfig(width int) keyboard.Config {
	cfg := keyboard.DefaultConfig()
	if width > 0 {
		cfg.WhiteKeyWidth = width
	}
	return cfg
}

// LoadServeState resets the state shared by the handlers.
func LoadServeState(cfg keyboard.Config, pressRate int, l *slog.Logger) {
	layoutConfig = cfg
	pressLimiter = rate.NewLimiter(rate.Limit(pressRate), pressRate)
	logger = l
	display = press.NewDisplay(constants.GetPressDebounce())
	display.Subscribe(func(value string) {
		l.Debug("active key settled", "display", value)
	})
}

var errRatioNotFinite = errors.New("ratio is out of range")

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.Error("could not encode response", "error", err)
		status = http.StatusInternalServerError
		data, _ = json.Marshal(model.ErrorResponse{Error: "could not encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
}

// strictRatio is pitch.Ratio limited to what JSON can carry.
func strictRatio(note string) (float64, error) {
	ratio, err := pitch.Ratio(note)
	if err != nil {
		return ratio, err
	}
	if math.IsInf(ratio, 0) {
		return ratio, fmt.Errorf("%w: %q", errRatioNotFinite, note)
	}
	return ratio, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func HandleRatio(w http.ResponseWriter, r *http.Request) {
	note := mux.Vars(r)["note"]
	ratio, err := strictRatio(note)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.RatioResponse{Note: note, Ratio: ratio})
}

func HandleOctave(w http.ResponseWriter, r *http.Request) {
	octave, err := strconv.Atoi(mux.Vars(r)["octave"])
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("octave must be an integer: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, keyboard.Generate(octave, layoutConfig))
}

func HandleKeyboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, keyboard.Board(keyboard.DefaultRows, layoutConfig))
}

func HandlePress(w http.ResponseWriter, r *http.Request) {
	if !pressLimiter.Allow() {
		writeError(w, http.StatusTooManyRequests, errors.New("too many key presses"))
		return
	}

	var input model.PressRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return
	}

	// the page only sends notes it got from the layout, so anything that
	// does not parse is a client bug
	if _, err := strictRatio(input.Note); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var ratio float64
	press.Bind(input.Note, func(r float64) {
		ratio = r
		display.Set(r)
	})()

	res := model.PressResponse{
		Id:      uuid.New().String(),
		Note:    input.Note,
		Ratio:   ratio,
		Display: press.Format(ratio),
	}
	logger.Info("key pressed", "id", res.Id, "note", res.Note, "ratio", res.Ratio)
	writeJSON(w, http.StatusOK, res)
}

func HandleActive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.ActiveResponse{
		Display: display.Value(),
		Presses: display.Presses(),
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/ratio/{note}", HandleRatio).Methods("GET")
	router.HandleFunc("/octave/{octave}", HandleOctave).Methods("GET")
	router.HandleFunc("/keyboard", HandleKeyboard).Methods("GET")
	router.HandleFunc("/press", HandlePress).Methods("POST")
	router.HandleFunc("/active", HandleActive).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
