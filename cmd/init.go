package cmd

import (
	"comic99/internal/aria2"
	"comic99/internal/download"
	"comic99/internal/files"
)

var (
	configPath string

	outputDirectory string
	useAria2        bool
	aria2RPC        string
	volumeSelection string
	latest          bool
	format          string
	naming          string
	workers         int
	logLevel        string
)

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config file",
	)
}

func initDownloadFlags() {
	downloadCmd.Flags().StringVarP(
		&outputDirectory,
		"out",
		"o",
		"",
		"specifies the output directory, defaults to the working directory",
	)
	downloadCmd.Flags().BoolVarP(
		&useAria2,
		"aria2",
		"a",
		false,
		"call aria2 by JSON-RPC to download files",
	)
	downloadCmd.Flags().StringVarP(
		&aria2RPC,
		"rpc",
		"r",
		aria2.DefaultRPC,
		"specifies the aria2 JSON-RPC address",
	)

	downloadCmd.Flags().StringVarP(
		&volumeSelection,
		"volumes",
		"V",
		"",
		"specifies the volumes to download, e.g. \"1 2-5 8\". prompts when empty",
	)
	downloadCmd.Flags().BoolVarP(
		&latest,
		"latest",
		"L",
		false,
		"download the latest volume",
	)

	downloadCmd.Flags().StringVarP(
		&format,
		"format",
		"f",
		files.FormatImages,
		"specifies the output format: images, cbz or pdf",
	)
	downloadCmd.Flags().StringVarP(
		&naming,
		"naming",
		"n",
		"{book} - {volume}",
		"specifies the naming template used for cbz and pdf archives",
	)
	downloadCmd.Flags().IntVarP(
		&workers,
		"workers",
		"w",
		download.DefaultWorkers,
		"specifies the number of pictures downloaded in parallel",
	)
	downloadCmd.Flags().StringVar(
		&logLevel,
		"log-level",
		"INFO",
		"specifies the log level: ERROR, WARN, INFO, DEBUG, TRACE",
	)

	downloadCmd.MarkFlagsMutuallyExclusive("latest", "volumes")
	downloadCmd.MarkFlagsMutuallyExclusive("aria2", "format")
}
