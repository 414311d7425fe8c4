package adapters

import (
	"bufio"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/nezuni1812/Vivid/application/ports/outbound"
	"github.com/nezuni1812/Vivid/domain"
)

// ffmpegAudioCodec shells out to ffprobe for durations and to ffmpeg's
// concat demuxer for stitching chunks. Scratch files get uuid names so
// concurrent invocations never collide, and are removed on every path.
type ffmpegAudioCodec struct {
	logger outbound.LoggerPort
}

func NewFFmpegAudioCodec(logger outbound.LoggerPort) outbound.AudioCodecPort {
	return &ffmpegAudioCodec{
		logger: logger,
	}
}

func (c *ffmpegAudioCodec) Duration(audio []byte) (float64, error) {
	scratchFile := "/tmp/" + uuid.NewString() + ".mp3"
	if err := os.WriteFile(scratchFile, audio, 0o644); err != nil {
		c.logger.Error(err, "Failed to write audio scratch file")
		return 0, err
	}
	defer func() {
		if err := os.Remove(scratchFile); err != nil {
			c.logger.Error(err, "Failed to remove audio scratch file")
		}
	}()

	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", scratchFile)

	out, err := cmd.Output()
	if err != nil {
		c.logger.Error(err, "Failed to probe audio duration")
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		c.logger.Error(err, "Failed to parse probed audio duration")
		return 0, err
	}

	return duration, nil
}

func (c *ffmpegAudioCodec) Concatenate(chunks []domain.AudioChunk) (finalFileName string, err error) {
	chunkFiles := make([]string, 0, len(chunks))
	defer func() {
		for _, name := range chunkFiles {
			if removeErr := os.Remove(name); removeErr != nil {
				c.logger.Error(removeErr, "Failed to remove chunk scratch file")
			}
		}
	}()

	for _, chunk := range chunks {
		chunkFile := "/tmp/" + uuid.NewString() + ".mp3"
		if err = os.WriteFile(chunkFile, chunk.Data, 0o644); err != nil {
			c.logger.Error(err, "Failed to write chunk scratch file")
			return "", err
		}
		chunkFiles = append(chunkFiles, chunkFile)
	}

	fileList, err := os.Create("/tmp/" + uuid.NewString())
	if err != nil {
		c.logger.Error(err, "Failed to create chunk list file")
		return "", err
	}
	defer func() {
		if closeErr := fileList.Close(); closeErr != nil {
			c.logger.Error(closeErr, "Failed to close chunk list file")
		}
		if removeErr := os.Remove(fileList.Name()); removeErr != nil {
			c.logger.Error(removeErr, "Failed to remove chunk list file")
		}
	}()

	writer := bufio.NewWriter(fileList)
	for _, name := range chunkFiles {
		if _, err = writer.WriteString("file '" + name + "'\n"); err != nil {
			c.logger.Error(err, "Failed to write to chunk list file")
			return "", err
		}
	}
	if err = writer.Flush(); err != nil {
		c.logger.Error(err, "Failed to flush chunk list file")
		return "", err
	}

	finalFileName = "/tmp/" + uuid.NewString() + ".mp3"

	cmd := exec.Command("ffmpeg", "-f", "concat", "-safe", "0", "-i", fileList.Name(), "-c", "copy", finalFileName)
	if err = cmd.Run(); err != nil {
		c.logger.Error(err, "Failed to concatenate audio chunks")
		return "", err
	}

	return finalFileName, nil
}
