package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"learn-gl/libgl"
	"learn-gl/libwin"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := libwin.DefaultConfig("Window")
	cfg.ParseArgs()

	win, err := libwin.Open(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	defer win.Close()

	counter := 0
	for !win.ShouldClose() {
		if win.Handle.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}

		libgl.State.ClearColor(0, 0, 1, 0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		counter++
		fmt.Printf("frame %d\r", counter)

		win.SwapAndPoll()
	}
	fmt.Println()
}
