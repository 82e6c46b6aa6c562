package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"student-performance-dashboard/cmd/bootstrap"
	"student-performance-dashboard/config"
	"student-performance-dashboard/internal/domain/entity"
	"student-performance-dashboard/internal/usecase"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// report renders the dashboard in the terminal: KPIs, a marks histogram,
// and ranked tables, driven by the same filter engine as the HTTP server.
func main() {
	course := flag.String("course", entity.MatchAll, "filter by course (All = no filter)")
	cities := flag.String("cities", "", "comma-separated city filter (default: every city in the dataset)")
	minMarks := flag.Float64("min-marks", 0, "minimum marks, inclusive")
	gender := flag.String("gender", entity.MatchAll, "filter by gender: All, Male or Female")
	search := flag.String("search", "", "search students by name and exit")
	top := flag.Bool("top", false, "show top performers (marks > 90) and exit")
	all := flag.Bool("all", false, "show the full dataset and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	records, err := bootstrap.LoadDataset(context.Background(), cfg.Dataset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *search != "":
		runSearch(records, *search)
	case *top:
		color.Yellow("\nTop Performers (marks > 90)")
		renderStudentTable(usecase.TopPerformers(records))
	case *all:
		color.Yellow("\nFull Dataset")
		renderStudentTable(records)
	default:
		runDashboard(records, entity.FilterCriteria{
			Course:   *course,
			Cities:   parseCities(*cities, records),
			MinMarks: *minMarks,
			Gender:   *gender,
		})
	}
}

func runSearch(records []entity.StudentRecord, query string) {
	matches, err := usecase.SearchByName(records, query)
	if err != nil {
		color.Red("No student found with this name")
		os.Exit(1)
	}

	color.Yellow("\nSearch Results for %q", query)
	renderStudentTable(matches)
}

func runDashboard(records []entity.StudentRecord, criteria entity.FilterCriteria) {
	subset := usecase.ApplyFilters(records, criteria)
	metrics, err := usecase.ComputeMetrics(subset)
	if err != nil {
		color.Yellow("No data matches the selected filters. Please adjust the filters.")
		return
	}

	color.Cyan("\n=== Student Performance Dashboard ===")
	fmt.Printf("Total Students:     %d\n", metrics.Count)
	fmt.Printf("Average Marks:      %.2f\n", metrics.AvgMarks)
	fmt.Printf("Average Attendance: %.2f%%\n", metrics.AvgAttendance)

	switch metrics.Tier {
	case entity.TierExcellent:
		color.Green("Excellent performance! The average marks are above 85.")
	case entity.TierGood:
		color.Blue("Good performance. The average marks are between 70 and 85.")
	default:
		color.Red("Needs improvement. The average marks are below 70.")
	}

	color.Yellow("\nStudents by Marks")
	renderStudentTable(usecase.RankByMarks(subset))

	color.Yellow("\nMarks Distribution")
	renderHistogramTable(usecase.MarksHistogram(subset, 10))
}

func renderStudentTable(records []entity.StudentRecord) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Course", "City", "Gender", "Marks", "Attendance (%)"})

	for _, record := range records {
		table.Append([]string{
			record.Name,
			record.Course,
			record.City,
			record.Gender,
			fmt.Sprintf("%.0f", record.Marks),
			fmt.Sprintf("%.0f", record.Attendance),
		})
	}

	table.Render()
}

func renderHistogramTable(bins []entity.HistogramBin) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Range", "Students"})

	for _, bin := range bins {
		table.Append([]string{
			fmt.Sprintf("%.1f - %.1f", bin.Low, bin.High),
			fmt.Sprintf("%d", bin.Count),
		})
	}

	table.Render()
}

// parseCities splits the -cities flag. With no explicit selection the report
// defaults to every city present in the dataset, unlike the web dashboard
// whose empty multiselect shows nothing until a city is picked.
func parseCities(raw string, records []entity.StudentRecord) []string {
	if raw != "" {
		parts := strings.Split(raw, ",")
		cities := make([]string, 0, len(parts))
		for _, part := range parts {
			if city := strings.TrimSpace(part); city != "" {
				cities = append(cities, city)
			}
		}
		return cities
	}

	seen := make(map[string]bool)
	var cities []string
	for _, record := range records {
		if !seen[record.City] {
			seen[record.City] = true
			cities = append(cities, record.City)
		}
	}
	return cities
}
