package integration

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// stubBackend is an in-memory rendition of the AI credit endpoint: one
// URL, JSON bodies discriminated by "action", 400 + {"detail": ...} on
// rejection. It keeps per-user credits, wallets and positions, plus the
// payment intents it has issued.
type stubBackend struct {
	mu       sync.Mutex
	credits  map[string]int
	wallets  map[string]stubWallet
	intents  map[string]*stubIntent
	reports  map[string]gin.H
	nextID   int
	requests []string // action log, for asserting what was (not) called
}

type stubWallet struct {
	address  string
	bytecode string
}

type stubIntent struct {
	clientSecret string
	creditsToAdd int
	confirmed    bool
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		credits: make(map[string]int),
		wallets: make(map[string]stubWallet),
		intents: make(map[string]*stubIntent),
		reports: make(map[string]gin.H),
	}
}

func (b *stubBackend) setCredits(userID string, n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credits[userID] = n
}

func (b *stubBackend) setReport(userID string, report gin.H) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reports[userID] = report
}

func (b *stubBackend) actions() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.requests))
	copy(out, b.requests)
	return out
}

func (b *stubBackend) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/ai_credit_endpoint", b.handle)
	return r
}

func reject(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
}

func (b *stubBackend) handle(c *gin.Context) {
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, "invalid request body")
		return
	}
	action, _ := req["action"].(string)
	userID, _ := req["user_id"].(string)
	if userID == "" {
		reject(c, "user_id is required")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, action)

	switch action {
	case "credits":
		c.JSON(http.StatusOK, gin.H{"credits_remaining": b.credits[userID]})

	case "get_aa_wallet":
		w, ok := b.wallets[userID]
		if !ok {
			c.JSON(http.StatusOK, gin.H{"wallet_address": nil, "bytecode": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"wallet_address": w.address, "bytecode": w.bytecode})

	case "create_aa_wallet":
		if _, ok := b.wallets[userID]; ok {
			reject(c, "Wallet already exists")
			return
		}
		b.nextID++
		w := stubWallet{
			address:  fmt.Sprintf("0xWallet%04d", b.nextID),
			bytecode: "0x" + strings.Repeat("60806040", 10),
		}
		b.wallets[userID] = w
		c.JSON(http.StatusOK, gin.H{"wallet_address": w.address, "bytecode": w.bytecode})

	case "ask":
		if b.credits[userID] <= 0 {
			reject(c, "Insufficient credits")
			return
		}
		b.credits[userID]--
		question, _ := req["question"].(string)
		model, _ := req["model"].(string)
		c.JSON(http.StatusOK, gin.H{"response": fmt.Sprintf("[%s] answer to: %s", model, question)})

	case "swap", "supply", "fund_ai_wallet", "transfer_usdc", "withdraw_usdc":
		if _, ok := b.wallets[userID]; !ok {
			reject(c, "AA wallet not found for user")
			return
		}
		b.nextID++
		c.JSON(http.StatusOK, gin.H{"tx_hash": fmt.Sprintf("0xtx%04d", b.nextID)})

	case "buy_credits":
		amount, ok := req["amount"].(float64)
		if !ok || amount <= 0 {
			reject(c, "Invalid credit amount")
			return
		}
		b.nextID++
		id := fmt.Sprintf("pi_%04d", b.nextID)
		intent := &stubIntent{
			clientSecret: id + "_secret_test",
			creditsToAdd: int(amount),
		}
		b.intents[id] = intent
		c.JSON(http.StatusOK, gin.H{
			"client_secret":     intent.clientSecret,
			"payment_intent_id": id,
			"credits_to_add":    intent.creditsToAdd,
		})

	case "confirm_buy_credits":
		id, _ := req["payment_intent_id"].(string)
		intent, ok := b.intents[id]
		if !ok || !intent.confirmed {
			reject(c, "Payment verification failed")
			return
		}
		creditsToAdd, _ := req["credits_to_add"].(float64)
		if int(creditsToAdd) != intent.creditsToAdd {
			reject(c, "Payment verification failed")
			return
		}
		b.credits[userID] += intent.creditsToAdd
		delete(b.intents, id)
		c.JSON(http.StatusOK, gin.H{"status": "success"})

	case "check_profits":
		if report, ok := b.reports[userID]; ok {
			c.JSON(http.StatusOK, report)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "no_active_positions"})

	default:
		reject(c, fmt.Sprintf("Invalid action: %s", action))
	}
}

// stubProcessor plays the card processor: it confirms payment intents
// issued by the stub backend and marks them settled there, the way the
// real processor and backend share state.
type stubProcessor struct {
	backend     *stubBackend
	declineCard string // card number that gets declined
}

func newStubProcessor(backend *stubBackend) *stubProcessor {
	return &stubProcessor{backend: backend, declineCard: "4000000000000002"}
}

func (p *stubProcessor) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/payment_intents/:id/confirm", p.confirm)
	return r
}

func (p *stubProcessor) confirm(c *gin.Context) {
	id := c.Param("id")
	card := c.PostForm("payment_method_data[card][number]")
	secret := c.PostForm("client_secret")

	p.backend.mu.Lock()
	defer p.backend.mu.Unlock()

	intent, ok := p.backend.intents[id]
	if !ok || intent.clientSecret != secret {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "No such payment_intent"}})
		return
	}
	if card == p.declineCard {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": gin.H{"message": "Your card was declined."}})
		return
	}
	intent.confirmed = true
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "succeeded"})
}
