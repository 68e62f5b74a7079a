package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const indexPage = `<!DOCTYPE html>
<html>
<head>
  <title>Knowledge Graph Generator</title>
  <style>
    body { font-family: Arial, sans-serif; padding: 20px; }
    .container { max-width: 600px; margin: auto; }
    img { max-width: 100%; margin-top: 20px; border: 1px solid #ccc; padding: 10px; }
  </style>
</head>
<body>
  <div class="container">
    <h2>Generate Knowledge Graph from PDF</h2>
    <form id="uploadForm" enctype="multipart/form-data">
      <input type="file" name="pdf" accept="application/pdf" required>
      <br><br>
      <button type="submit">Upload and Generate</button>
    </form>
    <div id="response" style="margin-top:20px;"></div>
    <img id="graphImage" src="" style="display:none;" alt="Knowledge Graph">
  </div>
<script>
const form = document.getElementById('uploadForm');
const responseDiv = document.getElementById('response');
const graphImage = document.getElementById('graphImage');

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  responseDiv.innerText = 'Processing PDF and generating graph...';
  graphImage.style.display = 'none';

  const res = await fetch('/upload', { method: 'POST', body: new FormData(form) });
  if (res.ok) {
    const data = await res.json();
    responseDiv.innerText = 'Graph generated successfully:';
    graphImage.src = data.image_url + '?t=' + Date.now();
    graphImage.style.display = 'block';
  } else {
    responseDiv.innerText = 'Error generating graph.';
  }
});
</script>
</body>
</html>
`

// IndexHandler serves the minimal browser upload page.
func IndexHandler(c echo.Context) error {
	return c.HTML(http.StatusOK, indexPage)
}
