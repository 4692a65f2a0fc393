package files

import (
	"archive/zip"
	"bufio"
	"image"
	_ "image/gif"  // needed to decode gif
	_ "image/jpeg" // needed to decode jpeg
	_ "image/png"  // needed to decode png
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	_ "golang.org/x/image/webp" // needed to decode webp
)

const (
	FormatImages = "images"
	FormatCBZ    = "cbz"
	FormatPDF    = "pdf"
)

func IsValidLocation(location string) error {
	if _, err := os.Stat(location); err != nil {
		return err
	}

	return nil
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ValidFormat reports whether format is one of the supported output formats
func ValidFormat(format string) bool {
	switch format {
	case FormatImages, FormatCBZ, FormatPDF:
		return true
	default:
		return false
	}
}

// Pack archives the downloaded pictures of sourceDir into outputPath in the
// requested format and removes sourceDir afterwards.
func Pack(format, sourceDir, outputPath string) error {
	var err error

	switch format {
	case FormatCBZ:
		err = CreateCbzArchive(sourceDir, outputPath)
	case FormatPDF:
		err = CreatePDF(sourceDir, outputPath)
	default:
		return errors.Errorf("unsupported archive format: %s", format)
	}

	if err != nil {
		return errors.Wrapf(err, "could not create %s", outputPath)
	}

	return os.RemoveAll(sourceDir)
}

// CreateCbzArchive creates a zip archive named cbzPath and adds all pictures from sourceDir to it
func CreateCbzArchive(sourceDir, cbzPath string) error {
	err := os.MkdirAll(filepath.Dir(cbzPath), os.ModePerm)
	if err != nil {
		return err
	}

	cbzFile, err := os.Create(cbzPath)
	if err != nil {
		return err
	}
	defer cbzFile.Close()

	writeBuf := bufio.NewWriter(cbzFile)
	defer writeBuf.Flush()

	zipWriter := zip.NewWriter(writeBuf)
	defer zipWriter.Close()

	return filepath.Walk(sourceDir, func(imgPath string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		if !isImage(imgPath) {
			return nil
		}

		return addFileToZip(zipWriter, imgPath, info.Name())
	})
}

// CreatePDF creates a pdf file named pdfPath with one page per picture in sourceDir
func CreatePDF(sourceDir, pdfPath string) error {
	err := os.MkdirAll(filepath.Dir(pdfPath), os.ModePerm)
	if err != nil {
		return err
	}

	pdf := fpdf.New(fpdf.OrientationPortrait, fpdf.UnitMillimeter, "", "")

	walkErr := filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !isImage(path) {
			return nil
		}

		pdfInfo := pdf.RegisterImageOptions(path, fpdf.ImageOptions{})
		if pdfInfo == nil {
			// fpdf cannot embed this image type
			pdf.ClearError()
			return nil
		}

		imgWidth, imgHeight := pdfInfo.Extent()

		// page size follows the picture, double spreads included
		pdf.AddPageFormat(fpdf.OrientationPortrait, fpdf.SizeType{Wd: imgWidth, Ht: imgHeight})
		pdf.ImageOptions(path, 0, 0, imgWidth, imgHeight, false, fpdf.ImageOptions{}, 0, "")

		return nil
	})
	if walkErr != nil {
		return walkErr
	}

	return pdf.OutputFileAndClose(pdfPath)
}

func isImage(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	_, _, err = image.DecodeConfig(bufio.NewReader(f))
	return err == nil
}

// addFileToZip adds a single file to the zip archive
func addFileToZip(zipWriter *zip.Writer, filePath, fileName string) error {
	fileToZip, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer fileToZip.Close()

	writer, err := zipWriter.Create(fileName)
	if err != nil {
		return err
	}

	readerBuf := bufio.NewReader(fileToZip)

	_, err = io.Copy(writer, readerBuf)
	return err
}
