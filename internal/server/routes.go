package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"audithive.dev/launcher/internal/analysis"
	"audithive.dev/launcher/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (server *Server) registerRoutes() {
	server.router.GET("/", server.page("index.html", "Code Audit"))
	server.router.GET("/generator", server.page("generator.html", "Rule Generator"))
	server.router.GET("/reports", server.page("reports.html", "Report History"))
	server.router.GET("/profile", server.page("profile.html", "Profile"))

	server.router.POST("/api/analyze", server.analyze)
	server.router.GET("/api/reports", server.listReports)
	server.router.GET("/api/reports/:slug/findings", server.reportFindings)
	server.router.GET("/api/profile", server.getProfile)
	server.router.POST("/api/profile", server.setProfile)

	server.router.GET("/results/:filename", server.downloadResult)
}

func (server *Server) page(templateName string, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, templateName, gin.H{"title": title})
	}
}

func (server *Server) analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded", "status": "error"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No filename", "status": "error"})
		return
	}

	tempPath, err := os.MkdirTemp("", "audithive-")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}
	defer os.RemoveAll(tempPath)
	sourcePath := filepath.Join(tempPath, "src")
	if err = os.MkdirAll(sourcePath, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}

	savePath := filepath.Join(sourcePath, filepath.Base(fileHeader.Filename))
	if err = c.SaveUploadedFile(fileHeader, savePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}

	// Uploaded archives are unpacked in place, keeping only the sources
	if isArchive(savePath) {
		if err = unpackArchive(savePath, sourcePath); err != nil {
			logrus.Warnf("Cannot unpack the uploaded archive: %+v", err)
		} else {
			os.Remove(savePath)
		}
	}

	var filePaths []string
	filepath.Walk(sourcePath, func(filePath string, info os.FileInfo, walkError error) error {
		if walkError == nil && !info.IsDir() {
			filePaths = append(filePaths, filePath)
		}
		return nil
	})

	language, err := analysis.DetectLanguage(filePaths)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported language or empty", "status": "error"})
		return
	}
	logrus.Infof("Detected language: %s", language)

	resultPath, err := server.analyzer.Run(c.Request.Context(), sourcePath, language)
	if err != nil {
		logrus.Errorf("%+v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}

	findings, err := analysis.ParseSARIF(resultPath)
	if err != nil {
		logrus.Errorf("%+v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}

	resultFileName := filepath.Base(resultPath)
	report := entity.Report{
		Slug:          strings.TrimSuffix(resultFileName, filepath.Ext(resultFileName)),
		Language:      language,
		FindingsCount: len(findings),
		SarifPath:     resultPath,
	}
	if err = server.databaseEngine.StoreReport(&report, findings); err != nil {
		// The reply still carries the findings, only the history entry is lost
		logrus.Warnf("Cannot store the report: %+v", err)
	}

	message := "Analysis completed, no obvious issues found"
	if len(findings) > 0 {
		message = fmt.Sprintf("Analysis completed, %d issues found", len(findings))
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"status":     "ok",
		"language":   language,
		"results":    findings,
		"sarif_file": resultFileName,
	})
}

func (server *Server) listReports(c *gin.Context) {
	reports, err := server.databaseEngine.GetReports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}
	entries := make([]gin.H, 0, len(reports))
	for _, report := range reports {
		entries = append(entries, gin.H{
			"slug":           report.Slug,
			"language":       report.Language,
			"findings_count": report.FindingsCount,
			"sarif_file":     filepath.Base(report.SarifPath),
			"created_at":     report.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "reports": entries})
}

func (server *Server) reportFindings(c *gin.Context) {
	report, err := server.databaseEngine.GetReportBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found", "status": "error"})
		return
	}
	findings, err := server.databaseEngine.GetFindingsByReport(&report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "results": findings})
}

// Profile values persisted as user variables
const (
	usernameVariable = "username"
	emailVariable    = "email"
)

func (server *Server) getProfile(c *gin.Context) {
	username, err := server.databaseEngine.GetUserVariable(usernameVariable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}
	email, err := server.databaseEngine.GetUserVariable(emailVariable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "username": username, "email": email})
}

func (server *Server) setProfile(c *gin.Context) {
	var profile struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "status": "error"})
		return
	}
	if err := server.databaseEngine.SetUserVariable(usernameVariable, profile.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}
	if err := server.databaseEngine.SetUserVariable(emailVariable, profile.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "status": "error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (server *Server) downloadResult(c *gin.Context) {
	fileName := c.Param("filename")
	if fileName != filepath.Base(fileName) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid file name", "status": "error"})
		return
	}
	resultPath := filepath.Join(server.resultsPath, fileName)
	if _, err := os.Stat(resultPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Result not found", "status": "error"})
		return
	}
	c.FileAttachment(resultPath, fileName)
}
