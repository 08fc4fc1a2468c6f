package main // import "github.com/tonobo/magent-autonomy"

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	DistanceScale = 1000.0 // distances keep three decimals as integers

	LogDir         = "/var/log"
	Debug          = false
	AllowedOrigins []string // websocket origins, empty allows any
)

var (
	move = flag.Bool("move", false, "Read one request from stdin and print the action")
	addr = flag.String("addr", ":8080", "Listen address")
)

func setupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/start", func(c *gin.Context) {
		var j Request
		if err := c.ShouldBindJSON(&j); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if j.Episode == "" {
			j.Episode = uuid.NewString()
		}
		fmt.Printf("Starting episode: %s (%s)\n", j.Episode, j.Agent)
		c.JSON(http.StatusOK, gin.H{"episode": j.Episode})
	})

	r.POST("/end", func(c *gin.Context) {
		var j Request
		if err := c.ShouldBindJSON(&j); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		w := j.LogFile()
		body, _ := json.Marshal(j)
		fmt.Fprintf(w, "end: %s\n", body)
		w.Close()
		fmt.Printf("End episode: %s (%s)\n", j.Episode, j.Agent)
		c.JSON(http.StatusOK, gin.H{})
	})

	r.POST("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	r.GET("/one", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"one": ReturnOne()})
	})

	r.POST("/move", func(c *gin.Context) {
		var j Request
		if err := c.ShouldBindJSON(&j); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		resp, err := j.Move()
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	r.GET("/stream", stream)

	return r
}

func main() {
	flag.StringVar(&LogDir, "logdir", LogDir, "Directory for per-agent decision logs, empty to discard")
	flag.BoolVar(&Debug, "debug", Debug, "Write decision logs to stdout")
	origins := flag.String("origins", "", "Comma separated origins allowed on /stream, empty allows any")
	flag.Parse()
	if *origins != "" {
		AllowedOrigins = strings.Split(*origins, ",")
	}
	if *move {
		var j Request
		err := json.NewDecoder(os.Stdin).Decode(&j)
		if err != nil {
			panic(err)
		}
		j.debug = true
		resp, err := j.Move()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(resp.Action)
		return
	}

	setupRouter().Run(*addr)
}
